package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/relay-run/relay/cmd/relay/internal/format"
	"github.com/relay-run/relay/pkg/config"
	"github.com/relay-run/relay/pkg/events"
	"github.com/relay-run/relay/pkg/output"
	"github.com/relay-run/relay/pkg/reporter"
	"github.com/relay-run/relay/pkg/stringutil"
)

// replayRecord is one line of the NDJSON event stream.
type replayRecord struct {
	Event string `json:"event"`
	Args  []any  `json:"args"`
}

// NewReplayCommand feeds a recorded event stream through a hub with a
// recording reporter attached, exercising registration, buffering, and
// fan-out end to end.
func NewReplayCommand() *cobra.Command {
	var (
		input   string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a recorded NDJSON event stream through the hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.FromContext(cmd.Context())
			if outFile == "" {
				outFile = settings.Output.Filename
			}

			in := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("open event stream: %w", err)
				}
				defer f.Close()
				in = f
			}

			summary, err := replayStream(cmd.Context(), in, outFile)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), format.RenderSummary(*summary))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Event stream file (NDJSON, \"-\" for stdin)")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write reporter output to this file instead of stdout")

	return cmd
}

func replayStream(ctx context.Context, in io.Reader, outFile string) (*format.Summary, error) {
	mgr := events.NewManager(log.Logger, output.NewResolver())

	handle, err := mgr.Add(reporter.Factory(newRecorderReporter), &config.Options{Filename: outFile})
	if err != nil {
		return nil, fmt.Errorf("register reporter: %w", err)
	}
	defer func() {
		if err := handle.Remove(); err != nil {
			log.Warn().Err(err).Msg("reporter teardown failed")
		}
	}()

	mgr.Run(ctx)

	var (
		summary format.Summary
		fatals  []*events.ErrorPayload
	)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec replayRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			log.Warn().Err(err).Str("line", stringutil.Ellipsis(string(line), 80)).Msg("skipping malformed record")
			summary.Skipped++
			continue
		}

		name := events.Name(rec.Event)
		emitArgs := rec.Args
		if name == events.FatalError && len(emitArgs) > 0 {
			payload := &events.ErrorPayload{
				Message: cast.ToString(cast.ToStringMap(emitArgs[0])["message"]),
			}
			emitArgs[0] = payload
			fatals = append(fatals, payload)
		}

		mgr.Emit(ctx, name, emitArgs...)
		summary.Delivered++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read event stream: %w", err)
	}

	for _, payload := range fatals {
		if !payload.Reported {
			summary.Unreported++
		}
	}
	summary.Buffered = mgr.BufferedCount()
	return &summary, nil
}

// newRecorderReporter builds a reporter that writes one line per received
// event to the lazily resolved output sink.
func newRecorderReporter(opts *config.Options) (reporter.Reporter, error) {
	hm := reporter.HandlerMap{}
	for _, name := range events.Names() {
		name := name
		hm[string(name)] = func(_ context.Context, args ...any) error {
			sink, err := opts.Output()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(sink, "%s\t%s\n", name, stringutil.Ellipsis(fmt.Sprint(args...), 200))
			return err
		}
	}
	return &recorderReporter{HandlerMap: hm, opts: opts}, nil
}

type recorderReporter struct {
	reporter.HandlerMap
	opts *config.Options
}

// Destroy ends the sink, but only if one was ever acquired.
func (r *recorderReporter) Destroy() error {
	if !r.opts.OutputResolved() {
		return nil
	}
	sink, err := r.opts.Output()
	if err != nil {
		return err
	}
	return sink.End()
}
