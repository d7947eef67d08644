// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/codefeedhq/codefeed/internal/config"
	"github.com/codefeedhq/codefeed/internal/output"
	"github.com/codefeedhq/codefeed/internal/scan"
	"github.com/codefeedhq/codefeed/internal/services/clipboard"
	"github.com/codefeedhq/codefeed/internal/tokenizer"
	"github.com/codefeedhq/codefeed/internal/types"
	"github.com/codefeedhq/codefeed/internal/utils"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	rootUse              = "codefeed"
	rootShortDescription = "Feed a codebase to a language model as one text stream"
	rootLongDescription  = `codefeed walks the current working directory, honors ignore files, filters
out binary and oversized files, and prints a visual tree followed by every
admitted file's content. Skipped files are explained on standard error, and
--report appends an estimate of how many tokens the aggregate content costs.`

	reportFlagShorthand      = "r"
	reportFlagDescription    = "print a summary report after the content"
	fileSizeFlagShorthand    = "f"
	fileSizeFlagDescription  = "maximum size in bytes for a single file"
	totalSizeFlagShorthand   = "t"
	totalSizeFlagDescription = "maximum cumulative size in bytes across all files"
	numFilesFlagShorthand    = "n"
	numFilesFlagDescription  = "maximum number of files to include"
	copyFlagShorthand        = "c"
	copyFlagDescription      = "copy the rendered output to the system clipboard"
	modelFlagDescription     = "tokenizer model used for the report estimate"

	versionFlagName        = "version"
	versionFlagShorthand   = "v"
	versionFlagDescription = "print the application version and exit"
	versionTemplate        = "codefeed version: %s\n"

	resolveWorkingDirectoryErrorFormat = "resolving working directory: %w"
	copyOutputErrorFormat              = "copying output to clipboard: %w"
)

// Execute runs the codefeed command line interface.
func Execute() error {
	return createRootCommand().Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.ApplicationVersion())
				return nil
			}
			settings, settingsError := config.ResolveSettings(command.Flags())
			if settingsError != nil {
				return settingsError
			}
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(resolveWorkingDirectoryErrorFormat, workingDirectoryError)
			}
			return runScan(command.Context(), settings, workingDirectory, command.OutOrStdout(), command.ErrOrStderr())
		},
	}

	commandFlags := rootCommand.Flags()
	commandFlags.BoolP(config.SettingKeyReport, reportFlagShorthand, false, reportFlagDescription)
	commandFlags.Int64P(config.SettingKeyFileSize, fileSizeFlagShorthand, config.DefaultMaxFileSizeBytes, fileSizeFlagDescription)
	commandFlags.Int64P(config.SettingKeyTotalSize, totalSizeFlagShorthand, config.DefaultMaxTotalSizeBytes, totalSizeFlagDescription)
	commandFlags.IntP(config.SettingKeyNumFiles, numFilesFlagShorthand, config.DefaultMaxFileCount, numFilesFlagDescription)
	commandFlags.BoolP(config.SettingKeyCopy, copyFlagShorthand, false, copyFlagDescription)
	commandFlags.String(config.SettingKeyModel, "", modelFlagDescription)
	commandFlags.BoolVarP(&showVersion, versionFlagName, versionFlagShorthand, false, versionFlagDescription)

	return rootCommand
}

// runScan executes one full scan of rootDirectoryPath and writes every output
// stream. The tokenizer is constructed up front when reporting was requested
// so a broken tokenizer aborts the run before any traversal work happens.
func runScan(runContext context.Context, settings config.Settings, rootDirectoryPath string, standardOutput io.Writer, standardError io.Writer) error {
	startTime := time.Now()

	var tokenCounter tokenizer.Counter
	if settings.ReportRequested {
		counter, _, counterError := tokenizer.NewCounter(tokenizer.Config{Model: settings.TokenizerModel})
		if counterError != nil {
			return counterError
		}
		tokenCounter = counter
	}

	ruleSet, ruleSetError := config.LoadRuleSet(rootDirectoryPath)
	if ruleSetError != nil {
		return ruleSetError
	}

	scanner := scan.NewScanner(rootDirectoryPath, scan.Limits{
		MaxFileCount:      settings.MaxFileCount,
		MaxTotalSizeBytes: settings.MaxTotalSizeBytes,
		MaxFileSizeBytes:  settings.MaxFileSizeBytes,
	})

	produce := func(walkContext context.Context, entryChannel chan<- types.Entry) error {
		return scan.Walk(rootDirectoryPath, ruleSet, func(entry types.Entry) error {
			select {
			case entryChannel <- entry:
				return nil
			case <-walkContext.Done():
				return walkContext.Err()
			}
		})
	}
	consume := func(entry types.Entry) error {
		scanner.Observe(entry)
		return nil
	}
	if dispatchError := dispatchEntries(runContext, produce, consume); dispatchError != nil {
		return dispatchError
	}
	result := scanner.Result()

	contentWriter := standardOutput
	var clipboardBuffer bytes.Buffer
	if settings.CopyToClipboard {
		contentWriter = io.MultiWriter(standardOutput, &clipboardBuffer)
	}
	renderer := output.NewRenderer(contentWriter, standardError)
	renderer.WriteScan(result)

	if settings.ReportRequested {
		report, reportError := scan.BuildReport(result, tokenCounter, time.Since(startTime))
		if reportError != nil {
			return reportError
		}
		renderer.WriteReport(report)
	}

	if settings.CopyToClipboard {
		if copyError := clipboard.NewService().Copy(clipboardBuffer.String()); copyError != nil {
			return fmt.Errorf(copyOutputErrorFormat, copyError)
		}
	}
	return nil
}

// dispatchEntries connects the traversal producer to the consuming scanner.
// The walk runs in its own goroutine while the consumer drains the channel in
// production order, so the scan still observes a strictly sequential entry
// stream.
func dispatchEntries(
	runContext context.Context,
	produce func(context.Context, chan<- types.Entry) error,
	consume func(types.Entry) error,
) error {
	if runContext == nil {
		runContext = context.Background()
	}
	group, walkContext := errgroup.WithContext(runContext)
	entries := make(chan types.Entry)

	group.Go(func() error {
		defer close(entries)
		return produce(walkContext, entries)
	})

	group.Go(func() error {
		for {
			select {
			case <-walkContext.Done():
				return walkContext.Err()
			case entry, open := <-entries:
				if !open {
					return nil
				}
				if consumeError := consume(entry); consumeError != nil {
					return consumeError
				}
			}
		}
	})

	return group.Wait()
}
