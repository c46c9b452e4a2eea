package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/abhisek/papersmith/internal/paper"
)

// BlockKind selects how a block is styled on the canvas.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockInstructions
	BlockIdentity
	BlockRule
	BlockSectionHeading
	BlockQuestion
	BlockAnswerHeading
	BlockAnswer
)

// Block is one vertical element of the logical canvas.
type Block struct {
	Kind BlockKind
	Text string
}

// Identity field labels printed under the title.
const (
	IdentityName = "Name: ______________________________"
	IdentityRoll = "Roll No: ______________"
	AnswerKey    = "Answer Key"
)

// Compose lays the document out as an ordered block list: title block,
// identity fields, a horizontal rule, then each section heading followed by
// its questions numbered from 1.
func Compose(doc paper.Document, layout Layout) []Block {
	blocks := []Block{{Kind: BlockTitle, Text: clean(doc.Title)}}
	if ins := clean(doc.Instructions); ins != "" {
		blocks = append(blocks, Block{Kind: BlockInstructions, Text: ins})
	}
	blocks = append(blocks,
		Block{Kind: BlockIdentity, Text: IdentityName},
		Block{Kind: BlockIdentity, Text: IdentityRoll},
		Block{Kind: BlockRule},
	)

	for _, s := range doc.Sections {
		blocks = append(blocks, Block{Kind: BlockSectionHeading, Text: clean(s.Title)})
		for i, q := range s.Questions {
			blocks = append(blocks, Block{Kind: BlockQuestion, Text: numbered(i, q)})
		}
	}

	if layout.IncludeAnswers && doc.HasAnswers() {
		blocks = append(blocks, Block{Kind: BlockRule}, Block{Kind: BlockAnswerHeading, Text: AnswerKey})
		for _, s := range doc.Sections {
			if len(s.Answers) == 0 {
				continue
			}
			blocks = append(blocks, Block{Kind: BlockSectionHeading, Text: clean(s.Title)})
			for i, a := range s.Answers {
				blocks = append(blocks, Block{Kind: BlockAnswer, Text: numbered(i, a)})
			}
		}
	}
	return blocks
}

func numbered(i int, text string) string {
	return fmt.Sprintf("%d. %s", i+1, clean(text))
}

// clean NFC-normalizes text, unifies line endings and trims the ends.
func clean(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(norm.NFC.String(s))
}
