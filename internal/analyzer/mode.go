package analyzer

import (
	"path/filepath"
	"strings"
)

// Mode selects how upload content is packaged for the provider.
type Mode int

const (
	// ModeAudio sends the file as inline binary data for the provider to
	// transcribe and analyze.
	ModeAudio Mode = iota + 1
	// ModeTranscript sends the raw text; timestamps may be absent and the
	// provider is told to estimate them.
	ModeTranscript
)

var (
	audioExtensions      = map[string]bool{".mp3": true, ".wav": true, ".m4a": true, ".mp4": true}
	transcriptExtensions = map[string]bool{".vtt": true, ".srt": true, ".txt": true}
)

// DetectMode classifies an upload by media type or filename extension.
// Files outside both sets are rejected before any request is built.
func DetectMode(filename, mediaType string) (Mode, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if strings.Contains(mediaType, "audio") || audioExtensions[ext] {
		return ModeAudio, nil
	}
	if transcriptExtensions[ext] {
		return ModeTranscript, nil
	}
	return 0, &ValidationError{
		Field:   "file",
		Message: "unsupported file type; expected audio (mp3, wav, m4a, mp4) or transcript (vtt, srt, txt)",
	}
}
