package cliapp

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"modulemd/index"
	"modulemd/mderrors"
)

var errFilesHadFailures = mderrors.New(mderrors.InvalidFieldValue, "one or more files failed validation")

// runValidate reads each path, calls Index.UpdateFromStream on it, and
// prints every collected Failure's YAML text and error to stderr. It
// returns an error (and a non-zero exit) if any file failed to open, or
// any subdocument in any file failed.
func runValidate(paths []string, strict bool) error {
	anyFailures := false
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return mderrors.Wrap(mderrors.YamlOpen, fmt.Sprintf("failed to open %s", path), err)
		}

		idx := index.New()
		ok, failures, err := idx.UpdateFromStream(f, strict)
		_ = f.Close()
		if err != nil {
			return err
		}

		for _, failure := range failures {
			anyFailures = true
			log.Error().Str("file", path).Err(failure.Err).Msg("subdocument failed")
			if failure.YAMLText != "" {
				fmt.Fprintln(os.Stderr, failure.YAMLText)
			}
		}

		if ok {
			fmt.Printf("%s: ok, %d module(s)\n", path, len(idx.GetModuleNames()))
		}
	}

	if anyFailures {
		return errFilesHadFailures
	}
	return nil
}
