package sqldump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ReadDump loads the whole legacy dump file into memory. encoding names the
// IANA charset the dump was exported in; empty or "utf-8" reads the file as is.
// The dump is parsed as one string, so very large dumps are bounded by memory;
// fine for a one-shot, operator-triggered import.
func ReadDump(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open dump file %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if encoding != "" && !strings.EqualFold(encoding, "utf-8") {
		enc, err := ianaindex.IANA.Encoding(encoding)
		if err != nil || enc == nil {
			return "", fmt.Errorf("unknown dump encoding %q", encoding)
		}
		r = transform.NewReader(f, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("could not read dump file %s: %w", path, err)
	}
	return string(data), nil
}
