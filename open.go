package pedigree

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Load reads family data from path and returns the validated Family. The path
// may be local or a gs:// Google Storage object, and may be gzip (.gz) or
// zstandard (.zst) compressed.
func Load(path string) (*Family, error) {
	rc, err := openMaybeCompressed(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	return LoadReader(rc)
}

func openMaybeCompressed(path string) (io.ReadCloser, error) {
	var rc io.ReadCloser

	if strings.HasPrefix(path, "gs://") {
		gsr, err := openGoogleStorage(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		rc = gsr
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		rc = f
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, pfx.Err(err)
		}
		return &stackedCloser{Reader: gz, closers: []io.Closer{gz, rc}}, nil

	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, pfx.Err(err)
		}
		zrc := zr.IOReadCloser()
		return &stackedCloser{Reader: zrc, closers: []io.Closer{zrc, rc}}, nil
	}

	return rc, nil
}

func openGoogleStorage(path string) (io.ReadCloser, error) {
	bucket, object, found := strings.Cut(strings.TrimPrefix(path, "gs://"), "/")
	if !found {
		return nil, pfx.Err(fmt.Errorf("the Google Storage path %q is expected to look like gs://bucket/object", path))
	}

	client, err := storage.NewClient(context.Background())
	if err != nil {
		return nil, pfx.Err(err)
	}

	rc, err := client.Bucket(bucket).Object(object).NewReader(context.Background())
	if err != nil {
		client.Close()
		return nil, pfx.Err(err)
	}

	return &stackedCloser{Reader: rc, closers: []io.Closer{rc, client}}, nil
}

// stackedCloser reads from the outermost reader in a decompression or network
// stack and closes every layer beneath it.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var err error
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}
