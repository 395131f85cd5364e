package vcs

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed commit.txt
var CommitId string

const Product = "circbroker"

func GetCommit() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return strings.TrimSpace(CommitId)
}

// GetSignature returns the value used for the Server header, product/commit.
func GetSignature() string {
	commit := GetCommit()
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return Product
	}
	return Product + "/" + commit
}
