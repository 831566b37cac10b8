// Package separation runs the simulated stem-separation pipeline.
//
// The Processor walks a fixed ordered stage list, emits one typed
// ProgressUpdate per stage, and pauses a configurable delay between
// stages to stand in for real signal processing. No audio is decoded
// and no output files are written; the result carries the predicted
// stem file names only. The sleep and clock are injectable so tests
// can exercise the stage/progress contract without real time passing.
package separation
