package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"speclint/internal/diag"
	"speclint/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest — sha256-ключ кеша.
type Digest = [32]byte

// DiskCache хранит диагностики неизменённых файлов на диске, чтобы повторный
// запуск не разбирал их заново. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the cached diagnostics of one file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	// Fingerprint of the rule configuration the diagnostics were produced with
	Fingerprint string

	Diags []cachedDiag
}

type cachedDiag struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []cachedNote
	Fixes    []cachedFix
}

type cachedNote struct {
	Message string
	Start   uint32
	End     uint32
}

type cachedFix struct {
	Title string
	Edits []cachedEdit
}

type cachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "results" — для удобства очистки руками.
	return filepath.Join(c.dir, "results", hexKey+".mp")
}

// cacheKey связывает содержимое файла с конфигурацией правил.
func cacheKey(file *source.File, fingerprint string) Digest {
	h := sha256.New()
	h.Write(file.Hash[:])
	h.Write([]byte(fingerprint))
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

// cacheFingerprint сериализует всё, что влияет на набор диагностик.
func cacheFingerprint(opts LintOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "schema=%d;maxlen=%d;maxdiag=%d;", diskCacheSchemaVersion, opts.Config.MaxDescriptionLength, opts.MaxDiagnostics)
	if opts.Enabled != nil {
		codes := make([]int, 0, len(opts.Enabled))
		for code, on := range opts.Enabled {
			if on {
				codes = append(codes, int(code))
			}
		}
		sort.Ints(codes)
		fmt.Fprintf(&sb, "rules=%v", codes)
	} else {
		sb.WriteString("rules=all")
	}
	return sb.String()
}

// Lookup возвращает сохранённый Bag для файла, если содержимое и
// конфигурация не менялись. Повреждённая запись считается промахом.
func (c *DiskCache) Lookup(file *source.File, fingerprint string, maxDiagnostics int) (*diag.Bag, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(cacheKey(file, fingerprint))
	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer f.Close() //nolint:errcheck // чтение, закрытие не влияет на результат

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Fingerprint != fingerprint {
		return nil, false
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		}
		for _, note := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: file.ID, Start: note.Start, End: note.End},
				Msg:  note.Message,
			})
		}
		for _, fix := range cd.Fixes {
			edits := make([]diag.FixEdit, 0, len(fix.Edits))
			for _, edit := range fix.Edits {
				edits = append(edits, diag.FixEdit{
					Span:    source.Span{File: file.ID, Start: edit.Start, End: edit.End},
					NewText: edit.NewText,
				})
			}
			d.Fixes = append(d.Fixes, diag.Fix{Title: fix.Title, Edits: edits})
		}
		bag.Add(d)
	}
	return bag, true
}

// Store сохраняет диагностики файла. Ошибки записи молча игнорируются:
// кеш — это оптимизация, а не часть результата.
func (c *DiskCache) Store(file *source.File, fingerprint string, bag *diag.Bag) {
	if c == nil || bag == nil {
		return
	}

	payload := DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Fingerprint: fingerprint,
	}
	for _, d := range bag.Items() {
		cd := cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, note := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Message: note.Msg, Start: note.Span.Start, End: note.Span.End})
		}
		for _, fix := range d.Fixes {
			cf := cachedFix{Title: fix.Title}
			for _, edit := range fix.Edits {
				cf.Edits = append(cf.Edits, cachedEdit{Start: edit.Span.Start, End: edit.Span.End, NewText: edit.NewText})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		payload.Diags = append(payload.Diags, cd)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(file, fingerprint))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer os.Remove(f.Name()) //nolint:errcheck // файла уже нет после rename

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// Атомарная замена
	_ = os.Rename(f.Name(), p)
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.RemoveAll(filepath.Join(c.dir, "results"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
