// Package paginate slices ordered result sets into numbered pages.
package paginate

import "strconv"

// Paginator describes Count items split into pages of PerPage.
type Paginator struct {
	Count   int
	PerPage int
}

func New(count, perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}
	return &Paginator{Count: count, PerPage: perPage}
}

// NumPages is never less than one, so an empty result still has a first page.
func (p *Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	return (p.Count + p.PerPage - 1) / p.PerPage
}

// Page resolves a raw page number. Anything that is not a positive integer
// selects the first page, numbers past the end select the last one.
func (p *Paginator) Page(raw string) *Page {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		n = 1
	}
	if last := p.NumPages(); n > last {
		n = last
	}
	return &Page{Number: n, paginator: p}
}

type Page struct {
	Number    int
	paginator *Paginator
}

func (pg *Page) Paginator() *Paginator { return pg.paginator }
func (pg *Page) NumPages() int         { return pg.paginator.NumPages() }
func (pg *Page) Count() int            { return pg.paginator.Count }
func (pg *Page) Offset() int           { return (pg.Number - 1) * pg.paginator.PerPage }
func (pg *Page) Limit() int            { return pg.paginator.PerPage }
func (pg *Page) HasPrevious() bool     { return pg.Number > 1 }
func (pg *Page) HasNext() bool         { return pg.Number < pg.NumPages() }
func (pg *Page) HasOtherPages() bool   { return pg.HasPrevious() || pg.HasNext() }
func (pg *Page) PreviousNumber() int   { return pg.Number - 1 }
func (pg *Page) NextNumber() int       { return pg.Number + 1 }

// Len is the number of items on this page.
func (pg *Page) Len() int {
	rest := pg.paginator.Count - pg.Offset()
	if rest < 0 {
		return 0
	}
	return min(rest, pg.paginator.PerPage)
}

// Range lists every page number, for rendering page links.
func (pg *Page) Range() []int {
	r := make([]int, pg.NumPages())
	for i := range r {
		r[i] = i + 1
	}
	return r
}
