package decl

import (
	gotoken "go/token"
	"os"
	"sort"
	"strings"

	mscanner "modernc.org/scanner"
	"modernc.org/token"
)

// ExtractFile reads the declaration source at path and parses every line
// marked with sentinel. The file is read whole and closed before parsing.
func (p *Parser) ExtractFile(path, sentinel string, needsHandle bool) (*Actions, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &MissingFileError{Path: path, Err: err}
	}
	return p.Extract(src, path, sentinel, needsHandle)
}

// Extract parses every line of src whose trimmed text starts with
// sentinel, in source order. The first line that fails to parse aborts
// the whole set. source is used in error positions.
func (p *Parser) Extract(src []byte, source, sentinel string, needsHandle bool) (*Actions, error) {
	var methods []*Method
	err := eachMarkedLine(src, source, sentinel, func(line string, at token.Position) error {
		m, err := p.parseMethod(sentinel, line, at)
		if err != nil {
			return err
		}
		methods = append(methods, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewActions(source, sentinel, needsHandle, methods)
}

// Check parses every marked line of src without stopping at the first
// problem. All parse, type and collision errors are returned together as
// a modernc.org/scanner ErrList sorted by position, or nil when the source
// is clean. Each entry carries the position in Pos; its Err message does
// not repeat it.
func (p *Parser) Check(src []byte, source, sentinel string) error {
	var (
		errs    mscanner.ErrList
		methods []*Method
	)
	add := func(err error) {
		pos, _ := PositionOf(err)
		if pe, ok := err.(positioned); ok {
			err = unpositioned{pe}
		}
		errs = append(errs, mscanner.ErrWithPosition{Pos: gotoken.Position(pos), Err: err})
	}
	eachMarkedLine(src, source, sentinel, func(line string, at token.Position) error {
		m, err := p.parseMethod(sentinel, line, at)
		if err != nil {
			add(err)
			return nil
		}
		methods = append(methods, m)
		return nil
	})

	seen := make(map[string]*Method, len(methods))
	for _, m := range methods {
		if first, ok := seen[m.OverloadName]; ok {
			add(&CollisionError{OverloadName: m.OverloadName, First: first, Second: m})
			continue
		}
		seen[m.OverloadName] = m
	}

	if len(errs) == 0 {
		return nil
	}
	sort.SliceStable(errs, func(i, j int) bool {
		a, b := errs[i].Pos, errs[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return errs
}

// eachMarkedLine calls fn for each line of src whose trimmed text starts
// with sentinel, passing the untrimmed line and the position of its
// first byte. It stops at the first error fn returns.
func eachMarkedLine(src []byte, source, sentinel string, fn func(line string, at token.Position) error) error {
	offset := 0
	for i, line := range strings.Split(string(src), "\n") {
		at := token.Position{Filename: source, Offset: offset, Line: i + 1}
		offset += len(line) + 1
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(strings.TrimSpace(line), sentinel) {
			continue
		}
		if err := fn(line, at); err != nil {
			return err
		}
	}
	return nil
}
