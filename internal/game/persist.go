package game

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Save writes a snapshot of the game to path, replacing any existing file.
func (g *Game) Save(path string) error {
	if g.st.Status == NotStarted {
		return ErrNotStarted
	}
	data, err := EncodeSnapshot(g.State())
	if err != nil {
		return &PersistError{Op: "save", Path: path, Kind: IOFailure, Err: err}
	}
	if err := writeFileAtomic(path, data); err != nil {
		kind := IOFailure
		if errors.Is(err, fs.ErrNotExist) {
			kind = FileNotFound
		}
		return &PersistError{Op: "save", Path: path, Kind: kind, Err: err}
	}
	log.Info().Str("game", g.st.ID).Str("path", path).Int("plies", len(g.st.History)).Msg("game saved")
	return nil
}

// Load replaces the game with the snapshot stored at path. On error the game is unchanged.
func (g *Game) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := IOFailure
		if errors.Is(err, fs.ErrNotExist) {
			kind = FileNotFound
		}
		return &PersistError{Op: "load", Path: path, Kind: kind, Err: err}
	}
	st, err := DecodeSnapshot(data)
	if err != nil {
		return &PersistError{Op: "load", Path: path, Kind: DecodeFailure, Err: err}
	}
	g.st = st
	log.Info().Str("game", st.ID).Str("path", path).Stringer("status", st.Status).Msg("game loaded")
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".xiangqi-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
