package batch

import (
	"strings"

	"github.com/luxkit/photometry/ies"
	"github.com/luxkit/photometry/ldt"
	"github.com/luxkit/photometry/luminaire"
)

// Format identifies one of the two supported photometric file formats.
type Format int

const (
	// FormatLDT is the EULUMDAT fixed-line format.
	FormatLDT Format = iota
	// FormatIES is the IESNA LM-63 format.
	FormatIES
)

// Extension returns the conventional file extension, dot included.
func (f Format) Extension() string {
	if f == FormatIES {
		return ".ies"
	}

	return ".ldt"
}

// String returns "ldt" or "ies".
func (f Format) String() string {
	if f == FormatIES {
		return "ies"
	}

	return "ldt"
}

// Input is one file to convert. A nil Format requests auto-detection.
type Input struct {
	Name    string
	Content string
	Format  *Format
}

// Output is the per-item conversion result. Exactly one of Content and Err
// is meaningful.
type Output struct {
	InputName  string
	OutputName string
	Content    string
	Err        error
}

// Stats aggregates a batch run.
type Stats struct {
	Total      int
	Successful int
	Failed     int
}

// Options tunes the conversion; the zero value is not useful, start from
// DefaultOptions.
type Options struct {
	// Revision selects the LM-63 dialect when the target is FormatIES.
	Revision ies.Revision
}

// DefaultOptions targets the current LM-63 revision.
func DefaultOptions() Options {
	return Options{Revision: ies.RevisionLM632002}
}

// Convert transcodes every input into the target format with default
// options. Outputs preserve input order; failures are per-item.
func Convert(inputs []Input, target Format) []Output {
	return ConvertWithOptions(inputs, target, DefaultOptions())
}

// ConvertWithOptions is Convert with explicit options.
func ConvertWithOptions(inputs []Input, target Format, opts Options) []Output {
	outputs := make([]Output, len(inputs))
	for i, in := range inputs {
		outputs[i] = convertOne(in, target, opts)
	}

	return outputs
}

// ConvertWithStats runs Convert and counts the outcomes.
func ConvertWithStats(inputs []Input, target Format) ([]Output, Stats) {
	outputs := Convert(inputs, target)

	stats := Stats{Total: len(outputs)}
	for _, out := range outputs {
		if out.Err != nil {
			stats.Failed++
		} else {
			stats.Successful++
		}
	}

	return outputs, stats
}

func convertOne(in Input, target Format, opts Options) Output {
	out := Output{
		InputName:  in.Name,
		OutputName: outputName(in.Name, target),
	}

	source := FormatLDT
	if in.Format != nil {
		source = *in.Format
	} else {
		source = DetectFormat(in.Content)
	}

	var (
		model *luminaire.Luminaire
		err   error
	)
	if source == FormatIES {
		model, err = ies.Parse(in.Content)
	} else {
		model, err = ldt.Parse(in.Content)
	}
	if err != nil {
		out.Err = err

		return out
	}

	if target == FormatIES {
		out.Content = ies.Write(model, opts.Revision)
	} else {
		out.Content = ldt.Write(model)
	}

	return out
}

// DetectFormat guesses the format from content alone: LM-63 files carry an
// IESNA header or a TILT= directive, EULUMDAT files have neither.
func DetectFormat(content string) Format {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "IESNA") || strings.Contains(content, "TILT=") {
		return FormatIES
	}

	return FormatLDT
}

// outputName swaps the input's extension for the target format's one.
func outputName(name string, target Format) string {
	base := name
	if i := strings.LastIndex(name, "."); i > 0 {
		base = name[:i]
	}
	if base == "" {
		base = "converted"
	}

	return base + target.Extension()
}
