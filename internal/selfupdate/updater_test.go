package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// releaseFixture serves a fake GitHub release: the latest-release endpoint
// plus downloadable asset and checksum files for the given tag.
type releaseFixture struct {
	tag       string
	asset     string
	archive   []byte
	checksums string
}

func (f releaseFixture) serve(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/yuiseki/sysquiz/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://github.com/yuiseki/sysquiz/releases/tag/%s"}`, f.tag, f.tag)
	})
	if f.asset != "" {
		prefix := fmt.Sprintf("/yuiseki/sysquiz/releases/download/%s/", f.tag)
		mux.HandleFunc(prefix+f.asset, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(f.archive)
		})
		mux.HandleFunc(prefix+"checksums.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(f.checksums))
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// makeTarGz wraps content as a single-entry tar.gz release archive.
func makeTarGz(t *testing.T, entry string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: entry, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// makeZip wraps content as a single-entry zip release archive.
func makeZip(t *testing.T, entry string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(entry)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func TestParseChecksums(t *testing.T) {
	input := "11aa  sysquiz_Linux_x86_64.tar.gz\n" +
		"22bb  sysquiz_Darwin_all.tar.gz\n" +
		"\n" +
		"not-a-checksum-line\n" +
		"33cc extra fields here\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"sysquiz_Linux_x86_64.tar.gz": "11aa",
		"sysquiz_Darwin_all.tar.gz":   "22bb",
	}, got)

	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	payload := []byte("release payload")

	assert.NoError(t, verifyChecksum(payload, sha256Hex(payload)))

	err := verifyChecksum(payload, sha256Hex([]byte("different payload")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "amd64", "sysquiz_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "sysquiz_Darwin_all.tar.gz", false},
		{"linux", "amd64", "sysquiz_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "sysquiz_Linux_arm64.tar.gz", false},
		{"linux", "386", "sysquiz_Linux_i386.tar.gz", false},
		{"windows", "amd64", "sysquiz_Windows_x86_64.zip", false},
		{"windows", "arm64", "sysquiz_Windows_arm64.zip", false},
		{"plan9", "amd64", "", true},
		{"linux", "riscv64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractBinary(t *testing.T) {
	payload := []byte("ELF pretend binary")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := extractBinary(makeTarGz(t, "sysquiz", payload), "sysquiz_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("zip uses exe name", func(t *testing.T) {
		got, err := extractBinary(makeZip(t, "sysquiz.exe", payload), "sysquiz_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("entry under a directory", func(t *testing.T) {
		got, err := extractBinary(makeTarGz(t, "sysquiz_Linux_x86_64/sysquiz", payload), "sysquiz_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("binary missing", func(t *testing.T) {
		_, err := extractBinary(makeTarGz(t, "README.md", payload), "sysquiz_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "sysquiz")
	require.NoError(t, os.WriteFile(target, []byte("v0.3.0 binary"), 0755))

	replacement := []byte("v0.4.1 binary")
	h := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		latestJSON    string
		version       string
		wantAvailable bool
		wantErr       bool
	}{
		{
			name:          "newer release",
			latestJSON:    `{"tag_name":"v0.4.1","html_url":"https://github.com/yuiseki/sysquiz/releases/tag/v0.4.1"}`,
			version:       "v0.3.0",
			wantAvailable: true,
		},
		{
			name:       "already current",
			latestJSON: `{"tag_name":"v0.3.0","html_url":"https://github.com/yuiseki/sysquiz/releases/tag/v0.3.0"}`,
			version:    "v0.3.0",
		},
		{
			name:       "response without tag",
			latestJSON: `{}`,
			version:    "v0.3.0",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/repos/yuiseki/sysquiz/releases/latest", r.URL.Path)
				_, _ = w.Write([]byte(tt.latestJSON))
			}))
			defer server.Close()

			result, err := NewChecker(WithBaseURL(server.URL)).Check(
				context.Background(), &CheckInput{Version: tt.version})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
		})
	}
}

func TestUpdate_ReplacesBinary(t *testing.T) {
	replacement := []byte("v0.4.1 binary")
	archive := makeTarGz(t, "sysquiz", replacement)
	asset, err := assetName()
	require.NoError(t, err)

	server := releaseFixture{
		tag:       "v0.4.1",
		asset:     asset,
		archive:   archive,
		checksums: fmt.Sprintf("%s  %s\n", sha256Hex(archive), asset),
	}.serve(t)

	execPath := filepath.Join(t.TempDir(), "sysquiz")
	require.NoError(t, os.WriteFile(execPath, []byte("v0.3.0 binary"), 0755))

	checker := NewChecker(
		WithBaseURL(server.URL),
		WithDownloadBaseURL(server.URL),
		withExecPath(func() (string, error) { return execPath, nil }),
	)

	var stages []string
	err = checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(execPath)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
	assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
}

func TestUpdate_RefusesDevBuild(t *testing.T) {
	err := NewChecker().Update(context.Background(),
		&UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdate_AlreadyLatest(t *testing.T) {
	server := releaseFixture{tag: "v0.3.0"}.serve(t)

	err := NewChecker(WithBaseURL(server.URL)).Update(context.Background(),
		&UpdateInput{CurrentVersion: "v0.3.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdate_RejectsBadChecksum(t *testing.T) {
	archive := makeTarGz(t, "sysquiz", []byte("v0.4.1 binary"))
	asset, err := assetName()
	require.NoError(t, err)

	server := releaseFixture{
		tag:     "v0.4.1",
		asset:   asset,
		archive: archive,
		// Checksum of something else entirely.
		checksums: fmt.Sprintf("%s  %s\n", sha256Hex([]byte("tampered")), asset),
	}.serve(t)

	err = NewChecker(
		WithBaseURL(server.URL),
		WithDownloadBaseURL(server.URL),
	).Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUpdate_MissingAsset(t *testing.T) {
	server := releaseFixture{tag: "v0.4.1"}.serve(t)

	err := NewChecker(
		WithBaseURL(server.URL),
		WithDownloadBaseURL(server.URL),
	).Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, func(UpdateProgress) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download archive")
}
