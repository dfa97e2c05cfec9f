package utils

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// WriteOutput prints the rendered report to stdout, or saves it to outFile
// when one is given.
func WriteOutput(output string, outFile string) error {
	if outFile == "" {
		fmt.Println(output)
		return nil
	}

	if err := os.WriteFile(outFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %v", err)
	}

	log.Infof("Results saved to: %s", outFile)
	return nil
}
