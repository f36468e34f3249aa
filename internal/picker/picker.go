package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sqweek/dialog"

	"github.com/1F47E/go-asciireel/internal/source"
	"github.com/1F47E/go-asciireel/pkg/apperr"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

// Pick opens the native file dialog restricted to f
func Pick(f source.Filter) (string, error) {
	log := logger.Scoped("picker")
	path, err := dialog.File().Filter(f.Name, f.Extensions...).Title("Select a file").Load()
	if errors.Is(err, dialog.ErrCancelled) || (err == nil && path == "") {
		return "", apperr.New(apperr.NoFileSelected, "pick "+strings.ToLower(f.Name), nil)
	}
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	log.Debugf("Selected %s", path)
	return path, nil
}
