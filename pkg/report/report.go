package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"mercator-hq/sieve/pkg/criteria"
	"mercator-hq/sieve/pkg/person"
)

// Section is the result of one query.
type Section struct {
	Query   Query
	Matched person.View
}

// Report holds the results of a run, one section per query in run order.
type Report struct {
	// Session is the ID of the store the queries ran against.
	Session string

	// Records is the store size.
	Records int

	Sections []Section
}

// WriteText renders each section as its title followed by ": " and one line
// per matched person. Sections are separated by a blank line.
func (r *Report) WriteText(w io.Writer) error {
	for i, s := range r.Sections {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s: \n", s.Query.Title); err != nil {
			return err
		}
		for j := 0; j < s.Matched.Len(); j++ {
			if _, err := fmt.Fprintln(w, s.Matched.At(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Rows returns one CSV row per matched person.
func (r *Report) Rows() ([]string, [][]string) {
	header := []string{"query", "title", "position", "ref", "name", "gender", "marital_status"}

	var rows [][]string
	for _, s := range r.Sections {
		for j := 0; j < s.Matched.Len(); j++ {
			p := s.Matched.At(j)
			rows = append(rows, []string{
				s.Query.Name,
				s.Query.Title,
				strconv.Itoa(j),
				strconv.Itoa(int(s.Matched.Ref(j))),
				p.Name(),
				p.Gender().String(),
				p.MaritalStatus().String(),
			})
		}
	}
	return header, rows
}

type jsonReport struct {
	Session  string        `json:"session"`
	Records  int           `json:"records"`
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	Query    string       `json:"query"`
	Title    string       `json:"title"`
	Criteria string       `json:"criteria"`
	Matched  []jsonPerson `json:"matched"`
}

type jsonPerson struct {
	Ref           person.Ref           `json:"ref"`
	Name          string               `json:"name"`
	Gender        person.Gender        `json:"gender"`
	MaritalStatus person.MaritalStatus `json:"marital_status"`
}

// MarshalJSON encodes the report with each matched person's store ref.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := jsonReport{
		Session:  r.Session,
		Records:  r.Records,
		Sections: make([]jsonSection, 0, len(r.Sections)),
	}

	for _, s := range r.Sections {
		js := jsonSection{
			Query:    s.Query.Name,
			Title:    s.Query.Title,
			Criteria: criteria.String(s.Query.Criteria),
			Matched:  make([]jsonPerson, 0, s.Matched.Len()),
		}
		for j := 0; j < s.Matched.Len(); j++ {
			p := s.Matched.At(j)
			js.Matched = append(js.Matched, jsonPerson{
				Ref:           s.Matched.Ref(j),
				Name:          p.Name(),
				Gender:        p.Gender(),
				MaritalStatus: p.MaritalStatus(),
			})
		}
		out.Sections = append(out.Sections, js)
	}

	return json.Marshal(out)
}
