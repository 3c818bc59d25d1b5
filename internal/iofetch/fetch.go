// Package iofetch makes vendor files available on the local file system.
// A file location is a local path, an http(s) URL or an s3://bucket/key
// object. Remote files are kept in the files cache directory.
package iofetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/gnsys"
	"github.com/gnames/gnuuid"
	"github.com/gnames/npdb/pkg/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Fetcher resolves file locations to local paths.
type Fetcher interface {
	// Fetch returns a local path of the file at the location, downloading
	// it first when the location is remote.
	Fetch(ctx context.Context, location string) (string, error)

	// FetchAll fetches every location of a map of files and returns local
	// paths under the same keys.
	FetchAll(ctx context.Context, files map[string]string) (map[string]string, error)

	// ClearCache removes previously downloaded files.
	ClearCache() error
}

type fetcher struct {
	cfg      *config.Config
	cacheDir string
	client   *http.Client
}

// New creates a Fetcher that keeps downloads in the files cache of the
// config home directory.
func New(cfg *config.Config) Fetcher {
	return &fetcher{
		cfg:      cfg,
		cacheDir: config.FilesCacheDir(cfg.HomeDir),
		client:   &http.Client{Timeout: 30 * time.Minute},
	}
}

func (f *fetcher) Fetch(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	switch {
	case strings.HasPrefix(location, "http://"),
		strings.HasPrefix(location, "https://"):
		return f.fetchHTTP(ctx, location)
	case strings.HasPrefix(location, "s3://"):
		return f.fetchS3(ctx, location)
	default:
		path := ExpandHome(location, f.cfg.HomeDir)
		if _, err := os.Stat(path); err != nil {
			return "", FileMissingError(location, path)
		}
		return path, nil
	}
}

func (f *fetcher) FetchAll(
	ctx context.Context,
	files map[string]string,
) (map[string]string, error) {
	res := make(map[string]string, len(files))
	for k, v := range files {
		path, err := f.Fetch(ctx, v)
		if err != nil {
			return nil, err
		}
		res[k] = path
	}
	return res, nil
}

func (f *fetcher) ClearCache() error {
	return gnsys.CleanDir(f.cacheDir)
}

// ExpandHome replaces leading ~ with the home directory.
func ExpandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// cachePath gives every location its own file, so files with the same
// name from different places do not collide.
func (f *fetcher) cachePath(location string) string {
	base := filepath.Base(location)
	id := gnuuid.New(location).String()[:8]
	return filepath.Join(f.cacheDir, id+"_"+base)
}

func (f *fetcher) fetchHTTP(ctx context.Context, location string) (string, error) {
	path := f.cachePath(location)
	if _, err := os.Stat(path); err == nil {
		slog.Info("Using cached file", "url", location, "path", path)
		return path, nil
	}
	if err := gnsys.MakeDir(f.cacheDir); err != nil {
		return "", FetchError(location, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", FetchError(location, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", FetchError(location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("status %d", resp.StatusCode)
		return "", FetchError(location, err)
	}

	// partial downloads never look like cached files
	tmp := path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return "", FetchError(location, err)
	}
	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return "", FetchError(location, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return "", FetchError(location, err)
	}

	slog.Info("Downloaded file", "url", location, "bytes", n)
	return path, nil
}

// ParseS3 splits s3://bucket/key location.
func ParseS3(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", err
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", fmt.Errorf("location %q is not s3://bucket/key", location)
	}
	return u.Host, key, nil
}

func (f *fetcher) fetchS3(ctx context.Context, location string) (string, error) {
	bucket, key, err := ParseS3(location)
	if err != nil {
		return "", FetchError(location, err)
	}

	path := f.cachePath(location)
	if _, err := os.Stat(path); err == nil {
		slog.Info("Using cached file", "object", location, "path", path)
		return path, nil
	}

	st := f.cfg.Storage
	if st.Endpoint == "" {
		err = fmt.Errorf("storage endpoint is not set in config.yaml")
		return "", FetchError(location, err)
	}

	client, err := minio.New(st.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(st.AccessKey, st.SecretKey, ""),
		Secure: st.UseSSL,
	})
	if err != nil {
		return "", FetchError(location, err)
	}

	err = client.FGetObject(ctx, bucket, key, path, minio.GetObjectOptions{})
	if err != nil {
		return "", FetchError(location, err)
	}
	slog.Info("Downloaded object", "bucket", bucket, "key", key)
	return path, nil
}
