package frequency

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RMahshie/adscorr/internal/storage"
	"github.com/rs/zerolog/log"
)

// S3Prefix marks a reference that is read from object storage
const S3Prefix = "s3://"

var (
	// ErrNoObjectStorage is returned for s3:// references when no store is configured
	ErrNoObjectStorage = errors.New("object storage is not configured")
	// ErrLocalPathNotAllowed is returned for local paths by an object-only loader
	ErrLocalPathNotAllowed = errors.New("local frequency paths are not allowed")
)

// Loader resolves frequency references to parsed frequency lists
type Loader struct {
	store      storage.S3Service
	localPaths bool
}

// NewLoader creates a loader that reads local paths and, when store is non-nil, s3:// keys
func NewLoader(store storage.S3Service) *Loader {
	return &Loader{store: store, localPaths: true}
}

// NewObjectLoader creates a loader that only resolves s3:// keys.
// Servers use it so clients cannot name files on the host.
func NewObjectLoader(store storage.S3Service) *Loader {
	return &Loader{store: store}
}

// Load reads the frequencies behind ref, either an s3:// key or a local path
func (l *Loader) Load(ctx context.Context, ref string) ([]float64, error) {
	key, ok := strings.CutPrefix(ref, S3Prefix)
	if !ok {
		if !l.localPaths {
			return nil, ErrLocalPathNotAllowed
		}
		return ReadFile(ref)
	}
	if l.store == nil {
		return nil, fmt.Errorf("%s: %w", ref, ErrNoObjectStorage)
	}

	data, err := l.store.DownloadFile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	frequencies, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}

	log.Debug().Str("ref", ref).Int("count", len(frequencies)).Msg("Loaded frequencies from object storage")
	return frequencies, nil
}
