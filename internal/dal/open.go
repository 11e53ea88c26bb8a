package dal

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	DriverFile = "file"
	DriverBolt = "bolt"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Open returns a Store backed by the named driver.
func Open(driver, path string, log *slog.Logger) (*Store, error) {
	var storage Storage
	switch driver {
	case DriverFile:
		storage = NewFileStorage(path)
	case DriverBolt:
		bolt, err := NewBoltStorage(path, log)
		if err != nil {
			return nil, fmt.Errorf("open bolt storage: %w", err)
		}
		storage = bolt
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	log.Debug("opened subscriber store", "driver", driver, "path", path)
	return NewStore(storage, log), nil
}
