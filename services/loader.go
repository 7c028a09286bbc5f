package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"

	"realestate-stats/models"
	"realestate-stats/storage"
	"realestate-stats/utils"
)

// LoadStats summarises one load.
type LoadStats struct {
	LoadID   string
	Accepted int
	Dropped  int
	Regions  int
}

// Loader turns a row source into the grouped listing collection.
type Loader struct {
	logger     *utils.Logger
	classifier Classifier
}

// NewLoader creates a Loader. A nil classifier means FirstSeenClassifier.
func NewLoader(logger *utils.Logger, classifier Classifier) *Loader {
	if classifier == nil {
		classifier = FirstSeenClassifier{}
	}
	return &Loader{logger: logger, classifier: classifier}
}

// LoadFile loads name from inside dir. The working directory is switched to
// dir for the duration of the read and restored afterwards. A file or
// directory that cannot be opened is reported as *FileNotFoundError.
func (ld *Loader) LoadFile(dir, name string, delimiter rune) (*models.Collection, *LoadStats, error) {
	var (
		coll  *models.Collection
		stats *LoadStats
	)

	err := utils.InDir(ld.logger, dir, func() error {
		r, err := storage.OpenFile(name, delimiter)
		if err != nil {
			return &FileNotFoundError{Path: filepath.Join(dir, name), Err: err}
		}
		defer r.Close()

		coll, stats, err = ld.Load(r)
		return err
	})
	if err != nil {
		var nf *FileNotFoundError
		if !errors.As(err, &nf) && errors.Is(err, fs.ErrNotExist) {
			err = &FileNotFoundError{Path: filepath.Join(dir, name), Err: err}
		}
		return nil, nil, err
	}
	return coll, stats, nil
}

// Load reads the header, then every row. Rows whose field count differs
// from the header's, and rows longer than the reader's line limit, are
// dropped without error.
func (ld *Loader) Load(src storage.RowReader) (*models.Collection, *LoadStats, error) {
	stats := &LoadStats{LoadID: uuid.NewString()}

	header, err := src.ReadHeader()
	if err == io.EOF {
		return nil, nil, ErrEmptyInput
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loader: read header: %w", err)
	}

	schema := models.NewSchema(header)
	coll := models.NewCollection()
	ld.logger.Debug("[loader] %s schema: %v", stats.LoadID, schema.Fields())

	line := 1
	for {
		row, err := src.ReadRow()
		if err == io.EOF {
			break
		}
		if errors.Is(err, storage.ErrLineTooLong) {
			line++
			stats.Dropped++
			ld.logger.Debug("[loader] Dropping line %d: %v", line, err)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("loader: %w", err)
		}
		line++

		listing, err := models.NewListing(schema, row, line)
		if err != nil {
			stats.Dropped++
			ld.logger.Debug("[loader] Dropping line %d: %v", line, err)
			continue
		}

		region := listing.State()
		coll.Append(ld.classifier.Classify(coll, region), region, listing)
		stats.Accepted++
	}

	for _, cat := range models.Categories {
		stats.Regions += len(coll.Regions(cat))
	}

	ld.logger.Info("[loader] Load %s: %d listings in %d region groups (dropped %d)",
		stats.LoadID, stats.Accepted, stats.Regions, stats.Dropped)
	return coll, stats, nil
}
