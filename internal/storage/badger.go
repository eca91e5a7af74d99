package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"smartgallery/internal/domain"
)

// photoKeyPrefix namespaces photo records inside the database so other record
// types can share it later.
const photoKeyPrefix = "photo:"

// BadgerRepository implements the PhotoRepository interface using BadgerDB.
type BadgerRepository struct {
	db  *badger.DB
	log logrus.FieldLogger
}

// NewBadgerRepository creates and initializes a new BadgerDB repository.
// It opens the database at the specified path.
func NewBadgerRepository(dbPath string, logger logrus.FieldLogger) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = &badgerLogger{logger.WithField("component", "badgerdb")}

	db, err := badger.Open(opts)
	if err != nil {
		logger.WithError(err).Error("Failed to open BadgerDB")
		return nil, fmt.Errorf("failed to open badger db at %s: %w", dbPath, err)
	}
	logger.WithField("path", dbPath).Info("BadgerDB opened")

	return &BadgerRepository{
		db:  db,
		log: logger.WithField("component", "photo_repository"),
	}, nil
}

// Close closes the BadgerDB database connection.
func (r *BadgerRepository) Close() error {
	r.log.Info("Closing BadgerDB...")
	if err := r.db.Close(); err != nil {
		r.log.WithError(err).Error("Error closing BadgerDB")
		return err
	}
	return nil
}

func photoKey(id string) []byte {
	return []byte(photoKeyPrefix + id)
}

// Upsert stores or replaces the metadata record for one photo. Badger updates
// run inside a transaction, so concurrent admin edits to different
// identifiers never interleave partially; the same identifier resolves to the
// last committed write.
func (r *BadgerRepository) Upsert(ctx context.Context, photo domain.Photo) error {
	log := r.log.WithFields(logrus.Fields{
		"photo_id": photo.ID,
		"category": photo.Category,
	})

	if photo.ID == "" {
		return errors.New("photo id is required")
	}
	if photo.UpdatedAt.IsZero() {
		photo.UpdatedAt = time.Now()
	}

	photoBytes, err := json.Marshal(photo)
	if err != nil {
		log.WithError(err).Error("Failed to marshal photo to JSON")
		return fmt.Errorf("failed to marshal photo: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(photoKey(photo.ID), photoBytes))
	})
	if err != nil {
		log.WithError(err).Error("Failed to save photo to BadgerDB")
		return fmt.Errorf("failed to save photo: %w", err)
	}

	log.Info("Photo metadata saved")
	return nil
}

// Get retrieves one photo's stored metadata by identifier.
func (r *BadgerRepository) Get(ctx context.Context, id string) (domain.Photo, error) {
	var photo domain.Photo

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(photoKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &photo)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Photo{}, ErrNotFound
	}
	if err != nil {
		r.log.WithError(err).WithField("photo_id", id).Error("Failed to read photo from BadgerDB")
		return domain.Photo{}, fmt.Errorf("failed to get photo %s: %w", id, err)
	}

	return photo, nil
}

// List returns all stored photos, newest-updated first. With visibleOnly set
// it returns only photos approved for public display.
func (r *BadgerRepository) List(ctx context.Context, visibleOnly bool) ([]domain.Photo, error) {
	var photos []domain.Photo

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(photoKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var photo domain.Photo
				if err := json.Unmarshal(val, &photo); err != nil {
					r.log.WithError(err).WithField("key", string(item.Key())).Error("Failed to unmarshal photo from DB")
					return fmt.Errorf("failed to unmarshal photo data for key %s: %w", string(item.Key()), err)
				}
				if visibleOnly && photo.Hidden {
					return nil
				}
				photos = append(photos, photo)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.log.WithError(err).Error("Failed to list photos from BadgerDB")
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].UpdatedAt.After(photos[j].UpdatedAt)
	})

	return photos, nil
}

// SetVisible flips the approval flag on an existing photo record.
func (r *BadgerRepository) SetVisible(ctx context.Context, id string, visible bool) error {
	log := r.log.WithFields(logrus.Fields{
		"photo_id": id,
		"visible":  visible,
	})

	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(photoKey(id))
		if err != nil {
			return err
		}

		var photo domain.Photo
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &photo)
		}); err != nil {
			return err
		}

		photo.Hidden = !visible
		photo.UpdatedAt = time.Now()

		photoBytes, err := json.Marshal(photo)
		if err != nil {
			return fmt.Errorf("failed to marshal photo: %w", err)
		}
		return txn.SetEntry(badger.NewEntry(photoKey(id), photoBytes))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		log.WithError(err).Error("Failed to update photo visibility")
		return fmt.Errorf("failed to set visibility for photo %s: %w", id, err)
	}

	log.Info("Photo visibility updated")
	return nil
}

// --- BadgerDB Internal Logger ---

// badgerLogger adapts logrus.FieldLogger to Badger's logger interface.
type badgerLogger struct {
	logger logrus.FieldLogger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Errorf(f, v...)
}
func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warningf(f, v...)
}
func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Infof(f, v...)
}
func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Debugf(f, v...)
}
