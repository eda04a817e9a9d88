// Package gemini implements the recommend.Generator interface using
// Google's Gemini API.
package gemini
