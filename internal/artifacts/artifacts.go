// Package artifacts publishes run reports to an S3-compatible object
// store. Publishing is opt-in; reports stay on disk whether or not
// the upload succeeds.
package artifacts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config locates the object store. Values come from MATRUN_S3_*
// environment variables; the config file may override Bucket and
// Prefix, but credentials never come from it.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	Bucket    string

	// Prefix is prepended to every object key, for shared buckets.
	Prefix string
}

// ConfigFromEnv assembles and validates the store config from the
// environment.
func ConfigFromEnv() (Config, error) {
	useSSL, err := envBool("MATRUN_S3_USE_SSL", false)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Endpoint:  envString("MATRUN_S3_ENDPOINT", "localhost:9000"),
		AccessKey: os.Getenv("MATRUN_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("MATRUN_S3_SECRET_KEY"),
		Region:    envString("MATRUN_S3_REGION", "us-east-1"),
		UseSSL:    useSSL,
		Bucket:    envString("MATRUN_S3_BUCKET", "matrun-reports"),
		Prefix:    os.Getenv("MATRUN_S3_PREFIX"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config is complete enough to reach a store.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("endpoint is required")
	}
	if strings.Contains(c.Endpoint, "://") {
		return fmt.Errorf("endpoint must not include scheme: %q", c.Endpoint)
	}
	if strings.TrimSpace(c.AccessKey) == "" {
		return errors.New("access key is required")
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("secret key is required")
	}
	if strings.TrimSpace(c.Region) == "" {
		return errors.New("region is required")
	}
	if strings.TrimSpace(c.Bucket) == "" {
		return errors.New("bucket is required")
	}
	return nil
}

// Object describes one published report file.
type Object struct {
	Key    string
	SHA256 string
	Size   int64
}

// Publisher uploads report files for a run.
type Publisher struct {
	client *minio.Client
	cfg    Config
}

// NewPublisher connects a publisher to the configured store.
func NewPublisher(cfg Config) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}
	return &Publisher{client: client, cfg: cfg}, nil
}

// EnsureBucket creates the configured bucket if it does not exist.
func (p *Publisher) EnsureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("bucket exists: %w", err)
	}
	if exists {
		return nil
	}
	if err := p.client.MakeBucket(ctx, p.cfg.Bucket, minio.MakeBucketOptions{Region: p.cfg.Region}); err != nil {
		return fmt.Errorf("make bucket %s: %w", p.cfg.Bucket, err)
	}
	return nil
}

// File is one report file to upload. Name is the object key relative
// to the run directory; environments contribute names like
// "go1.24-chi-v5.1/lock.json" so their files never collide.
type File struct {
	Name string
	Path string
}

// Publish uploads the files under runs/<run-id>/ and returns the
// stored objects with their digests.
func (p *Publisher) Publish(ctx context.Context, runID string, files []File) ([]Object, error) {
	objects := make([]Object, 0, len(files))
	for _, file := range files {
		obj, err := p.publishFile(ctx, runID, file)
		if err != nil {
			return objects, fmt.Errorf("publish %s: %w", file.Name, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func (p *Publisher) publishFile(ctx context.Context, runID string, file File) (Object, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return Object{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Object{}, err
	}

	key := ObjectKey(p.cfg.Prefix, runID, file.Name)
	hasher := sha256.New()
	reader := io.TeeReader(f, hasher)

	_, err = p.client.PutObject(ctx, p.cfg.Bucket, key, reader, info.Size(),
		minio.PutObjectOptions{ContentType: contentType(file.Name)})
	if err != nil {
		return Object{}, err
	}

	return Object{
		Key:    key,
		SHA256: hex.EncodeToString(hasher.Sum(nil)),
		Size:   info.Size(),
	}, nil
}

// ObjectKey builds the store key for a run file.
func ObjectKey(prefix, runID, name string) string {
	return path.Join(prefix, "runs", runID, name)
}

func contentType(file string) string {
	if ct := mime.TypeByExtension(filepath.Ext(file)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func envString(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envBool(name string, fallback bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
