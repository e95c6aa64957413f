package dictionary

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

var ErrLoad = errors.New("dictionary: load failed")

// Files は辞書ファイル名。ExtensionはFS上に無くてもよい
type Files struct {
	Total       string `yaml:"total"`
	Extension   string `yaml:"extension"`
	Compounds   string `yaml:"compounds"`
	Uncompounds string `yaml:"uncompounds"`
	CJ          string `yaml:"cj"`
	Josa        string `yaml:"josa"`
	Eomi        string `yaml:"eomi"`
	Prefix      string `yaml:"prefix"`
	Suffix      string `yaml:"suffix"`
}

func DefaultFiles() Files {
	return Files{
		Total:       "total.dic",
		Extension:   "extension.dic",
		Compounds:   "compounds.dic",
		Uncompounds: "uncompounds.dic",
		CJ:          "cj.dic",
		Josa:        "josa.dic",
		Eomi:        "eomi.dic",
		Prefix:      "prefix.dic",
		Suffix:      "suffix.dic",
	}
}

//go:embed data/*.dic
var embedded embed.FS

var defaultDictionary = sync.OnceValues(func() (*Dictionary, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Load(sub, DefaultFiles())
})

// Default は埋め込みの辞書を返す。読み込みはプロセス内で一度だけ行われる
func Default() (*Dictionary, error) {
	return defaultDictionary()
}

// Load は辞書ファイルを並行に読み込む。一つでも失敗すれば何も返さない
func Load(fsys fs.FS, files Files) (*Dictionary, error) {
	var (
		total, extension, compounds, uncompounds, cj []string
		josa, eomi, prefix, suffix                   map[string]struct{}
	)

	eg := errgroup.Group{}
	readTo := func(dst *[]string, name string, optional bool) {
		eg.Go(func() error {
			lines, err := readLines(fsys, name)
			if err != nil {
				if optional && errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
			}
			*dst = lines
			return nil
		})
	}
	setTo := func(dst *map[string]struct{}, name string) {
		eg.Go(func() error {
			lines, err := readLines(fsys, name)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
			}
			*dst = toSet(lines)
			return nil
		})
	}

	readTo(&total, files.Total, false)
	if files.Extension != "" {
		readTo(&extension, files.Extension, true)
	}
	readTo(&compounds, files.Compounds, false)
	readTo(&uncompounds, files.Uncompounds, false)
	readTo(&cj, files.CJ, false)
	setTo(&josa, files.Josa)
	setTo(&eomi, files.Eomi)
	setTo(&prefix, files.Prefix)
	setTo(&suffix, files.Suffix)
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	words := NewTrie[*Entry]()
	for _, line := range append(total, extension...) {
		if e, ok := parseWord(line); ok {
			words.Add(e.Word, e)
		}
	}
	for _, line := range compounds {
		if e, ok := parseCompound(line, "20000000X"); ok {
			words.Add(e.Word, e)
		}
	}

	uncompoundMap := make(map[string]*Entry)
	for _, line := range uncompounds {
		if e, ok := parseCompound(line, padFeatures("90000X")); ok {
			uncompoundMap[e.Word] = e
		}
	}

	cjMap := make(map[string]string)
	for _, line := range cj {
		k, v, ok := strings.Cut(line, ":")
		if !ok || strings.Contains(v, ":") {
			continue
		}
		cjMap[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return &Dictionary{
		words:       words,
		uncompounds: uncompoundMap,
		cjwords:     cjMap,
		josa:        josa,
		eomi:        eomi,
		prefix:      prefix,
		suffix:      suffix,
		syllables:   buildSyllables(josa, eomi),
	}, nil
}

// readLines は空行とコメント行(#)を除いた行を返す
func readLines(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func toSet(lines []string) map[string]struct{} {
	m := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		m[l] = struct{}{}
	}
	return m
}

// parseWord は「単語,素性」の行を読む。形式が違う行は捨てる
func parseWord(line string) (*Entry, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return nil, false
	}
	word := strings.TrimSpace(fields[0])
	features := padFeatures(strings.TrimSpace(fields[1]))
	if word == "" || len(features) != featureSize {
		return nil, false
	}
	return NewEntry(word, features), true
}

// parseCompound は「複合語:単位語,単位語...」の行を読む
func parseCompound(line, features string) (*Entry, bool) {
	fields := strings.Split(line, ":")
	if len(fields) != 2 {
		return nil, false
	}
	word := strings.TrimSpace(fields[0])
	if word == "" {
		return nil, false
	}
	e := NewEntry(word, features)
	rs := []rune(word)
	cursor := 0
	for _, part := range strings.Split(fields[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		offset := indexRunes(rs, []rune(part), cursor)
		if offset >= 0 {
			cursor = offset + runeLen(part)
		}
		e.Compounds = append(e.Compounds, NewCompound(part, offset, true))
	}
	if len(e.Compounds) == 0 {
		return nil, false
	}
	return e, true
}

func indexRunes(s, sub []rune, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		match := true
		for j := range sub {
			if s[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
