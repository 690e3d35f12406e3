package services

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dionisvl/my.traffic-lights/internal/game"
)

// QuestionLibrary serves predefined question lists from plain text files,
// one question per non-empty line.
type QuestionLibrary struct {
	baseDir string
}

func NewQuestionLibrary(baseDir string) *QuestionLibrary {
	return &QuestionLibrary{baseDir: baseDir}
}

type QuestionFile struct {
	Name string `json:"name"`
}

// List returns the .txt/.md files of the library directory. An absent or
// unreadable directory reads as an empty library.
func (l *QuestionLibrary) List() []QuestionFile {
	entries, err := os.ReadDir(l.baseDir)
	if err != nil {
		return []QuestionFile{}
	}

	files := []QuestionFile{}
	for _, entry := range entries {
		if entry.IsDir() || !allowedFile(entry.Name()) {
			continue
		}
		files = append(files, QuestionFile{Name: entry.Name()})
	}
	return files
}

// Read loads one file and splits it into trimmed non-empty lines. Only base
// filenames with an allowed extension are accepted.
func (l *QuestionLibrary) Read(name string) (string, []string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") || !allowedFile(name) {
		return "", nil, game.NewError(game.CodeInvalidArgument, "invalid file name")
	}

	raw, err := os.ReadFile(filepath.Join(l.baseDir, name))
	if err != nil {
		return "", nil, game.NewError(game.CodeNotFound, "file not found")
	}

	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var questions []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			questions = append(questions, line)
		}
	}
	return content, questions, nil
}

func allowedFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return true
	}
	return false
}
