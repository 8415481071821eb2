// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mutex   sync.Mutex
	loggers []*log.Logger
	out     io.Writer = io.Discard
	outFile *os.File
)

// GetLogger returns a logger with the given prefix. The logger writes to the
// output set by SetOutput or SetOutputFile, and discards messages before
// either is called.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, including future ones
// returned by GetLogger, to the given writer.
func SetOutput(newOut io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	setOutput(newOut)
}

// SetOutputFile redirects the output of all loggers, including future ones
// returned by GetLogger, to the named file. An empty name reverts to
// discarding all output.
func SetOutputFile(fname string) error {
	mutex.Lock()
	defer mutex.Unlock()
	if fname == "" {
		closeOutFile()
		setOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	closeOutFile()
	outFile = file
	setOutput(file)
	return nil
}

func setOutput(newOut io.Writer) {
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
