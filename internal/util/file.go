package util

import (
	"errors"
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/atomic"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CheckFilePermissionsForExecution checks whether the given filePath
// is safe to be executed by pid2go.
func CheckFilePermissionsForExecution(filePath string) (bool, error) {
	file, err := filepath.EvalSymlinks(filePath)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(file)
	if os.IsNotExist(err) {
		return false, errors.New("file not found")
	}
	if err != nil {
		return false, err
	}

	if info.IsDir() {
		return false, errors.New("file is a directory")
	}

	otherWrite := info.Mode() & (os.FileMode(0o002))
	if otherWrite != 0 {
		return false, errors.New("others have write permission")
	}

	if info.Mode()&(os.FileMode(0o111)) == 0 {
		return false, errors.New("file is not executable")
	}

	return true, nil
}

// ExpandPath resolves a leading "~" to the home directory of the current user
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

// ReadFloatFromFile reads a single floating point number from the given file
func ReadFloatFromFile(path string) (value float64, err error) {
	path, err = ExpandPath(path)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return 0, fmt.Errorf("file is empty: %s", path)
	}
	return strconv.ParseFloat(text, 64)
}

// WriteFloatToFileAtomic writes a single floating point number to the given file,
// replacing its content atomically
func WriteFloatToFileAtomic(value float64, path string) error {
	valueAsString := strconv.FormatFloat(value, 'f', 4, 64)
	return WriteFileAtomic(path, strings.NewReader(valueAsString))
}

// WriteFileAtomic replaces the content of the given file atomically
func WriteFileAtomic(path string, r io.Reader) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}
	evaluatedPath, err := filepath.EvalSymlinks(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	return atomic.WriteFile(path, r)
}
