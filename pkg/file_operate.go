package pkg

import (
	"fmt"
	"io"
	"os"
)

// CheckFileExist reports whether filePath names a file that can be
// stat'd, distinguishing "does not exist" from other stat failures
// (permissions, a bad path component) by returning the latter as an
// error.
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadFileOrStdin reads path's contents, or standard input when path
// is empty or "-".
func ReadFileOrStdin(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	exists, err := CheckFileExist(path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("input file does not exist: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// WriteFileOrStdout writes data to path, or standard output when path
// is empty or "-".
func WriteFileOrStdout(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
