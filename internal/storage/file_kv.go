package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortuned/internal/storage/interfaces"
	"fortuned/internal/structures"
)

// FileKV maps each key to one zstd-compressed file under dir. Writes go
// through a tmp file with fsync and rename so a crash never leaves a
// half-written value behind.
type FileKV struct {
	dir        string
	mode       os.FileMode
	compressor interfaces.CompressorInterface
}

func NewFileKV(dir string, mode os.FileMode, compressor interfaces.CompressorInterface) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create kv dir: %w", err)
	}
	return &FileKV{dir: dir, mode: mode, compressor: compressor}, nil
}

// NewHistoryKV builds the KV store backing the history log.
func NewHistoryKV(conf *structures.Config, compressor interfaces.CompressorInterface) (*FileKV, error) {
	return NewFileKV(conf.History.Dir, 0o644, compressor)
}

func (f *FileKV) path(key string) string {
	// Keys are fixed storage identifiers, not user input, but keep the
	// filename flat regardless.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, safe+".dat")
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, false, err
	}
	return decompressed, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	data, err := f.compressor.Compress(value)
	if err != nil {
		return err
	}

	fileName := f.path(key)
	tmpFile := fileName + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.mode)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileKV) Close() {
	f.compressor.Close()
}
