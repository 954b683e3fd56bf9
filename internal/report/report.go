// Package report prints run results as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/qevolve/internal/quantum"
)

// Initial writes the sum of the starting amplitudes.
func Initial(w io.Writer, psi quantum.Vector) error {
	_, err := fmt.Fprintf(w, "Initial sum of psi is %s\n", formatComplex(psi.Sum()))
	return err
}

// Final writes every amplitude of psi, one per line in index order, followed
// by the squared norm.
func Final(w io.Writer, psi quantum.Vector) error {
	if _, err := fmt.Fprintln(w, "Full wavefunction at end"); err != nil {
		return err
	}
	for _, a := range psi {
		if _, err := fmt.Fprintln(w, formatComplex(a)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Norm at end is: %s\n", strconv.FormatFloat(psi.Norm(), 'g', -1, 64))
	return err
}

func formatComplex(c complex128) string {
	return strconv.FormatComplex(c, 'g', -1, 128)
}
