package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source serves template lookups from S3. Paths are object URIs of
// the form "s3://bucket/key"; because they carry a URI scheme, the
// loader treats registered entries like "s3://assets/templates" as
// absolute and never joins them against its root directory.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	src := source.NewS3Source(s3.NewFromConfig(cfg))
//
//	loader, _ := templaro.New(templaro.Config{Source: src})
//	loader.SetPaths("mail", "s3://assets/templates/mail")
type S3Source struct {
	client *s3.Client
}

var _ Source = (*S3Source)(nil)

// NewS3Source creates an S3-backed source from an aws-sdk-go-v2 client.
func NewS3Source(client *s3.Client) *S3Source {
	return &S3Source{client: client}
}

// IsFile reports whether the URI names an existing object.
func (s *S3Source) IsFile(ctx context.Context, path string) bool {
	bucket, key, ok := splitObjectURI(path)
	if !ok || key == "" {
		return false
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// IsDir reports whether the URI names a non-empty key prefix. The
// bucket root counts as a directory when the bucket is listable.
func (s *S3Source) IsDir(ctx context.Context, path string) bool {
	bucket, key, ok := splitObjectURI(path)
	if !ok {
		return false
	}

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(1),
	}
	if key != "" {
		input.Prefix = aws.String(strings.TrimSuffix(key, "/") + "/")
	}

	out, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		return false
	}
	if key == "" {
		return true
	}
	return out.KeyCount != nil && *out.KeyCount > 0
}

// ReadFile downloads the object named by the URI.
func (s *S3Source) ReadFile(ctx context.Context, path string) ([]byte, error) {
	bucket, key, ok := splitObjectURI(path)
	if !ok {
		return nil, fmt.Errorf("not an s3 object uri: %q", path)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %q: %w", path, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// ModTime returns the object's LastModified timestamp.
func (s *S3Source) ModTime(ctx context.Context, path string) (time.Time, error) {
	bucket, key, ok := splitObjectURI(path)
	if !ok {
		return time.Time{}, fmt.Errorf("not an s3 object uri: %q", path)
	}

	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("s3 head %q: %w", path, err)
	}
	if out.LastModified == nil {
		return time.Time{}, fmt.Errorf("s3 head %q: no last-modified", path)
	}
	return *out.LastModified, nil
}

// Canonical is the identity for object URIs; S3 has no symlinks.
func (*S3Source) Canonical(path string) string {
	return path
}

// splitObjectURI splits "s3://bucket/key" into its bucket and key.
func splitObjectURI(p string) (bucket, key string, ok bool) {
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return "", "", false
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), true
}
