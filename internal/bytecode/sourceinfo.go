package bytecode

import "github.com/cwbudde/go-jscore/internal/token"

// SourceInfo is a block's lazily materialized code-offset → source-
// position table, populated on first debugger/error-reporting request.
// It is a run-length array searched by binary search, carrying the
// full token.Position rather than a bare line number.
type SourceInfo struct {
	marks []posMark
}

// SourceInfoAt returns the source position of the instruction at code
// offset, building (and caching) the block's SourceInfo on first call.
// If the emission-time position track was released, it falls back to
// Reparse; a block with neither has no source information and returns
// the zero Position.
func (b *ByteCodeBlock) SourceInfoAt(offset int) token.Position {
	if b.sourceInfo == nil {
		b.sourceInfo = b.buildSourceInfo()
	}
	return b.sourceInfo.at(offset)
}

func (b *ByteCodeBlock) buildSourceInfo() *SourceInfo {
	if b.positions != nil {
		return &SourceInfo{marks: b.positions}
	}
	if b.Reparse == nil {
		return &SourceInfo{}
	}
	reparsed, err := b.Reparse()
	if err != nil || len(reparsed) == 0 {
		return &SourceInfo{}
	}
	marks := make([]posMark, len(reparsed))
	for i, m := range reparsed {
		marks[i] = posMark{codeOffset: m.CodeOffset, pos: m.Pos}
	}
	return &SourceInfo{marks: marks}
}

// at performs a binary search: the entry whose codeOffset is the
// largest one not exceeding offset covers every instruction up to the
// next entry.
func (s *SourceInfo) at(offset int) token.Position {
	if len(s.marks) == 0 {
		return token.Position{}
	}
	left, right := 0, len(s.marks)-1
	result := s.marks[0].pos
	for left <= right {
		mid := (left + right) / 2
		if s.marks[mid].codeOffset <= offset {
			result = s.marks[mid].pos
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return result
}
