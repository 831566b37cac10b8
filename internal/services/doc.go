// Package services defines the error taxonomy shared by the validator,
// the separation pipeline, and the CLI boundary.
//
// Errors are tagged with sentinel markers so the entrypoint can map a
// failure to the right exit code without inspecting message text.
package services
