package wordlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/lth/hashcrack/internal/shared"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	ErrInsufficientMemory = errors.New("not enough free memory for wordlist generation")
	ErrGenerationFailed   = errors.New("background wordlist generation failed")
)

// bytesPerCandidate approximates the heap cost of one candidate: string
// header, backing bytes, slice slot and map entry.
const bytesPerCandidate = 96

// availableMemory reports free memory in bytes.
var availableMemory = func(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// MessageKind tags a Message from background generation.
type MessageKind int

const (
	MessageProgress MessageKind = iota
	MessageLog
	MessageComplete
	MessageError
)

// Message is one event from GenerateAsync. Exactly one Complete or Error
// message ends the stream.
type Message struct {
	Kind       MessageKind
	Count      int // unique candidates so far
	Generated  int // candidates produced, including duplicates
	Text       string
	Candidates []string
	Err        error
}

// GenerateAsync runs Generate on its own goroutine and streams progress,
// log lines and the final list over the returned channel. The channel is
// closed after the terminal message. Cancelling ctx ends generation with an
// Error message carrying ctx.Err().
func GenerateAsync(ctx context.Context, p Plan, opts Options) <-chan Message {
	ch := make(chan Message, 16)

	send := func(m Message) bool {
		select {
		case ch <- m:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(ch)
		defer func() {
			if r := recover(); r != nil {
				shared.ErrorLogger.Error("Wordlist generation panicked", "panic", r)
				send(Message{Kind: MessageError, Err: fmt.Errorf("%w: %v", ErrGenerationFailed, r)})
			}
		}()

		if err := checkMemory(ctx, p); err != nil {
			send(Message{Kind: MessageError, Err: err})
			return
		}

		opts.OnLog = func(msg string) {
			send(Message{Kind: MessageLog, Text: msg})
		}
		opts.OnProgress = func(count, generated int) {
			send(Message{Kind: MessageProgress, Count: count, Generated: generated})
		}

		send(Message{Kind: MessageLog, Text: fmt.Sprintf("Starting %s wordlist generation", p.Scale)})
		list, err := Generate(ctx, p, opts)
		if err != nil {
			// a cancelled ctx may already have closed the consumer side
			select {
			case ch <- Message{Kind: MessageError, Err: err}:
			default:
			}
			return
		}
		send(Message{Kind: MessageComplete, Count: len(list), Generated: len(list), Candidates: list})
	}()

	return ch
}

func checkMemory(ctx context.Context, p Plan) error {
	need := uint64(p.Estimate()) * bytesPerCandidate
	free, err := availableMemory(ctx)
	if err != nil {
		// unknown memory state: let the allocation decide
		shared.Logger.Debug("Could not read available memory", "error", err)
		return nil
	}
	if free < need {
		return fmt.Errorf("%w: need ~%s, have %s", ErrInsufficientMemory,
			humanize.IBytes(need), humanize.IBytes(free))
	}
	return nil
}

// Request describes one generateCandidates call.
type Request struct {
	CostFactor int
	Ultra      bool
	Mega       bool

	Verified *VerifiedStore
	External []string

	Logger     *log.Logger
	OnLog      func(msg string)
	OnProgress func(count, generated int)
}

// Result is a generated candidate list with how it was produced.
type Result struct {
	Candidates []string
	Scale      Scale
	// FellBack is set when the background job failed and the list was
	// regenerated at normal scale.
	FellBack bool
}

// Build produces the wordlist for req. Normal scale runs in the calling
// goroutine; ultra and mega run through GenerateAsync and, if that fails,
// fall back to a synchronous normal-scale list for the same cost factor.
func Build(ctx context.Context, req Request) (Result, error) {
	return BuildPlan(ctx, PlanFor(req.CostFactor, req.Ultra, req.Mega), req)
}

// BuildPlan is Build with an explicit plan.
func BuildPlan(ctx context.Context, p Plan, req Request) (Result, error) {
	logger := req.Logger
	if logger == nil {
		logger = shared.Logger
	}
	opts := Options{
		Verified:   req.Verified,
		External:   req.External,
		Logger:     logger,
		OnLog:      req.OnLog,
		OnProgress: req.OnProgress,
	}

	if p.Scale == Normal {
		list, err := Generate(ctx, p, opts)
		return Result{Candidates: list, Scale: Normal}, err
	}

	var genErr error
	for msg := range GenerateAsync(ctx, p, opts) {
		switch msg.Kind {
		case MessageProgress:
			if req.OnProgress != nil {
				req.OnProgress(msg.Count, msg.Generated)
			}
		case MessageLog:
			if req.OnLog != nil {
				req.OnLog(msg.Text)
			}
		case MessageComplete:
			return Result{Candidates: msg.Candidates, Scale: p.Scale}, nil
		case MessageError:
			genErr = msg.Err
		}
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if genErr == nil {
		genErr = ErrGenerationFailed
	}

	logger.Warn("Background generation failed, falling back to normal scale", "scale", p.Scale, "error", genErr)
	list, err := Generate(ctx, NormalPlan(p.CostFactor), opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Candidates: list, Scale: Normal, FellBack: true}, nil
}
