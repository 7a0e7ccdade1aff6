package html

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gompdf/tableprint/internal/model"
)

// ErrNoTable is returned when the document has no table at the requested index
var ErrNoTable = errors.New("table not found")

// Parser reads tables out of HTML documents
type Parser struct {
	// Pad fills short rows with empty cells and drops surplus cells
	// instead of failing
	Pad bool
}

// NewParser creates a new HTML table parser
func NewParser() *Parser {
	return &Parser{Pad: true}
}

// ParseTable parses the index-th table of the document read from r with a
// padding parser
func ParseTable(r io.Reader, index int) (*model.Table, error) {
	return NewParser().Parse(r, index)
}

// ParseString parses the index-th table (0-based) of an HTML string
func (p *Parser) ParseString(content string, index int) (*model.Table, error) {
	return p.Parse(strings.NewReader(content), index)
}

// Parse parses the index-th table (0-based) of an HTML document. The first
// row containing <th> cells, or the first row when there are none, becomes
// the header. Cells spanning several columns are repeated for each column.
func (p *Parser) Parse(r io.Reader, index int) (*model.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	tables := findAll(doc, atom.Table)
	if index < 0 || index >= len(tables) {
		return nil, fmt.Errorf("%w: index %d, document has %d", ErrNoTable, index, len(tables))
	}

	rows := tableRows(tables[index])
	if len(rows) == 0 {
		return model.NewTable(nil, nil)
	}

	headerAt := 0
	for i, row := range rows {
		if row.header {
			headerAt = i
			break
		}
	}
	headers := rows[headerAt].cells

	body := make([][]string, 0, len(rows)-1)
	for i, row := range rows {
		if i == headerAt {
			continue
		}
		cells := row.cells
		if p.Pad {
			cells = pad(cells, len(headers))
		}
		body = append(body, cells)
	}
	return model.NewTable(headers, body)
}

type row struct {
	cells  []string
	header bool
}

// tableRows collects the rows of table without descending into nested tables
func tableRows(table *html.Node) []row {
	var rows []row
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
				continue
			case atom.Tr:
				rows = append(rows, readRow(c))
			default:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

func readRow(tr *html.Node) row {
	var r row
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		if c.DataAtom == atom.Th {
			r.header = true
		}
		text := cellText(c)
		for i := 0; i < colspan(c); i++ {
			r.cells = append(r.cells, text)
		}
	}
	return r
}

// maxColspan matches the limit browsers apply to the colspan attribute
const maxColspan = 1000

func colspan(n *html.Node) int {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, "colspan") {
			if v, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil && v > 1 {
				return min(v, maxColspan)
			}
		}
	}
	return 1
}

// cellText returns the text content of n with whitespace collapsed
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch {
		case cur.Type == html.TextNode:
			b.WriteString(cur.Data)
		case cur.Type == html.ElementNode && cur.DataAtom == atom.Br:
			b.WriteByte(' ')
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && cur.DataAtom == a {
			found = append(found, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func pad(cells []string, n int) []string {
	if len(cells) >= n {
		return cells[:n]
	}
	out := make([]string, n)
	copy(out, cells)
	return out
}
