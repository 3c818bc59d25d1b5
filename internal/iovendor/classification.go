package iovendor

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/npdb/pkg/record"
)

// Columns of the classification export.
const (
	colInChIKey     = "InChIKey"
	colSuperClass   = "superclass.name"
	colClass        = "class.name"
	colSubClass     = "subclass.name"
	colDirectParent = "direct_parent.name"
)

// Classification reads a ClassyFire export into a lookup by InChIKey.
// Columns are found by header names, missing values ("", NaN, NA) become
// empty strings.
func Classification(path string) (map[string]record.Classification, Stats, error) {
	var stats Stats
	res := make(map[string]record.Classification)

	file, err := os.Open(path)
	if err != nil {
		return nil, stats, ReadFileError(path, err)
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	if !sc.Scan() {
		err = fmt.Errorf("no header line")
		if sc.Err() != nil {
			err = sc.Err()
		}
		return nil, stats, ReadFileError(path, err)
	}

	idx, err := headerIndex(sc.Text())
	if err != nil {
		return nil, stats, ReadFileError(path, err)
	}

	want := 0
	for _, v := range idx {
		want = max(want, v+1)
	}

	lineNum := 1
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.Read++
		f := strings.Split(line, "\t")
		if len(f) < want {
			stats.Malformed++
			continue
		}
		key := value(f[idx[colInChIKey]])
		if key == "" {
			stats.Malformed++
			continue
		}
		res[key] = record.Classification{
			SuperClass:   value(f[idx[colSuperClass]]),
			Class:        value(f[idx[colClass]]),
			SubClass:     value(f[idx[colSubClass]]),
			DirectParent: value(f[idx[colDirectParent]]),
		}
	}
	if err = sc.Err(); err != nil {
		return nil, stats, ReadFileError(path, err)
	}
	return res, stats, nil
}

func headerIndex(header string) (map[string]int, error) {
	res := make(map[string]int)
	for i, v := range strings.Split(strings.TrimRight(header, "\r"), "\t") {
		res[strings.TrimSpace(v)] = i
	}
	for _, v := range []string{
		colInChIKey, colSuperClass, colClass, colSubClass, colDirectParent,
	} {
		if _, ok := res[v]; !ok {
			return nil, fmt.Errorf("column %q is missing", v)
		}
	}
	return res, nil
}

func value(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "NaN", "nan", "NA":
		return ""
	}
	return s
}
