package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"sectionkit/core/snapshot"
	"sectionkit/core/storage"
)

var (
	// ErrNotFound is returned when no snapshot is archived under a name.
	ErrNotFound = errors.New("snapshot not found")
	// ErrInvalidName is returned for names that cannot be used as object keys.
	ErrInvalidName = errors.New("invalid snapshot name")
)

// Prefix is the object key prefix of archived snapshots.
const Prefix = "snapshots/"

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// Entry is one archived snapshot as listed.
type Entry struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service reads and writes archived snapshots.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	loads  singleflight.Group
}

// NewService creates a new archive service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Key returns the object key of the named snapshot.
func Key(name string) string {
	return path.Join(Prefix, name+".json")
}

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

// Export stores a manifest of snap under name, replacing any previous one.
func (s *Service) Export(ctx context.Context, name string, snap *snapshot.Snapshot) (*Manifest, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, ""); err != nil {
		return nil, err
	}

	m := NewManifest(name, snap)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, Key(name), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot %s: %w", name, err)
	}

	s.logger.Info("Snapshot archived",
		zap.String("name", name),
		zap.Int("groups", len(m.Groups)),
		zap.Int("sections", m.Sections()),
	)
	return &m, nil
}

// List returns every archived snapshot ordered by key.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries := []Entry{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		name, ok := strings.CutSuffix(strings.TrimPrefix(obj.Key, Prefix), ".json")
		if !ok {
			continue
		}
		entries = append(entries, Entry{Name: name, Size: obj.Size, LastModified: obj.LastModified})
	}
	return entries, nil
}

// Load reads the named manifest. Concurrent loads of one name share a single read.
func (s *Service) Load(ctx context.Context, name string) (*Manifest, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	v, err, shared := s.loads.Do(name, func() (any, error) {
		return s.read(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Snapshot read shared", zap.String("name", name))
	}
	m := *v.(*Manifest)
	return &m, nil
}

func (s *Service) read(ctx context.Context, name string) (*Manifest, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, Key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, notFound(name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, notFound(name, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return &m, nil
}

// notFound maps a missing object to ErrNotFound.
func notFound(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return fmt.Errorf("failed to read snapshot %s: %w", name, err)
}

// Delete removes the named snapshot.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, Key(name), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", name, err)
	}
	return nil
}

// Purge removes every archived snapshot and returns how many were removed.
func (s *Service) Purge(ctx context.Context) (int, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	objects := make(chan minio.ObjectInfo, len(entries))
	for _, e := range entries {
		objects <- minio.ObjectInfo{Key: Key(e.Name)}
	}
	close(objects)

	var errs []error
	for e := range s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("%s: %w", e.ObjectName, e.Err))
	}
	if len(errs) > 0 {
		return len(entries) - len(errs), fmt.Errorf("failed to purge snapshots: %w", errors.Join(errs...))
	}
	s.logger.Info("Snapshots purged", zap.Int("count", len(entries)))
	return len(entries), nil
}
