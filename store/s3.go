package store

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// An S3 store keeps its file tree in an AWS S3 bucket, using the key
// separator '/' as the directory separator. Data pack files are small,
// so objects are buffered in memory and uploaded in a single PutObject
// when the writer is closed.
//
// Do not change Bucket or Prefix concurrently with calls using the
// structure.
type S3 struct {
	svc    *s3.S3
	Bucket string
	Prefix string
}

var (
	// ensure S3 satisfies the Store interface
	_ Store = &S3{}
)

// NewS3 creates a new S3 store. It will use the given bucket and will
// prepend prefix to all keys. This is to allow a bucket to be used for
// more than one store. The authorization method and credentials in the
// session are used for all accesses.
func NewS3(bucket, prefix string, awsSession *session.Session) *S3 {
	return &S3{
		Bucket: bucket,
		Prefix: prefix,
		svc:    s3.New(awsSession),
	}
}

// dirkey returns the object key prefix for the directory named by prefix,
// with a trailing slash, e.g. "mypack/data/".
func (s *S3) dirkey(prefix string) string {
	k := s.Prefix + prefix
	if k != "" && !strings.HasSuffix(k, "/") {
		k += "/"
	}
	return k
}

// Create returns a writer which uploads its content under key when
// closed. Nothing is sent to S3 until Close.
func (s *S3) Create(key string) (io.WriteCloser, error) {
	return &s3Writer{
		svc:    s.svc,
		bucket: s.Bucket,
		key:    s.Prefix + key,
	}, nil
}

// Open returns a reader streaming the object under key.
func (s *S3) Open(key string) (io.ReadCloser, error) {
	out, err := s.svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Prefix + key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return out.Body, nil
}

// List returns every object key at or below prefix, sorted.
func (s *S3) List(prefix string) ([]string, error) {
	var result []string
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket),
		Prefix: aws.String(s.dirkey(prefix)),
	}
	err := s.svc.ListObjectsV2Pages(input,
		func(page *s3.ListObjectsV2Output, lastpage bool) bool {
			for _, item := range page.Contents {
				result = append(result, strings.TrimPrefix(*item.Key, s.Prefix))
			}
			return !lastpage
		})
	sort.Strings(result)
	return result, err
}

// SubDirs returns the immediate child directories of prefix, using the
// '/' delimiter support in the S3 list call.
func (s *S3) SubDirs(prefix string) ([]string, error) {
	dir := s.dirkey(prefix)
	var result []string
	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.Bucket),
		Prefix:    aws.String(dir),
		Delimiter: aws.String("/"),
	}
	err := s.svc.ListObjectsV2Pages(input,
		func(page *s3.ListObjectsV2Output, lastpage bool) bool {
			for _, item := range page.CommonPrefixes {
				name := strings.TrimPrefix(*item.Prefix, dir)
				result = append(result, strings.TrimSuffix(name, "/"))
			}
			return !lastpage
		})
	sort.Strings(result)
	return result, err
}

// DirExists reports whether at least one object lives below prefix.
func (s *S3) DirExists(prefix string) (bool, error) {
	out, err := s.svc.ListObjectsV2(&s3.ListObjectsV2Input{
		Bucket:  aws.String(s.Bucket),
		Prefix:  aws.String(s.dirkey(prefix)),
		MaxKeys: aws.Int64(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Contents) > 0, nil
}

// RemoveAll deletes every object below prefix, batching the deletes as
// allowed by the S3 API.
func (s *S3) RemoveAll(prefix string) error {
	keys, err := s.List(prefix)
	if err != nil {
		return err
	}
	// DeleteObjects accepts at most 1000 keys per call
	for len(keys) > 0 {
		n := len(keys)
		if n > 1000 {
			n = 1000
		}
		batch := make([]*s3.ObjectIdentifier, 0, n)
		for _, key := range keys[:n] {
			batch = append(batch, &s3.ObjectIdentifier{
				Key: aws.String(s.Prefix + key),
			})
		}
		_, err = s.svc.DeleteObjects(&s3.DeleteObjectsInput{
			Bucket: aws.String(s.Bucket),
			Delete: &s3.Delete{Objects: batch},
		})
		if err != nil {
			return err
		}
		keys = keys[n:]
	}
	return nil
}

// s3Writer buffers writes and performs the upload on Close.
type s3Writer struct {
	svc    *s3.S3
	bucket string
	key    string
	buf    bytes.Buffer
}

func (w *s3Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *s3Writer) Close() error {
	_, err := w.svc.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.key),
		Body:   bytes.NewReader(w.buf.Bytes()),
	})
	return err
}
