package task

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	Aws "github.com/aws/aws-sdk-go/aws"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/daids/gif2esp/src/aws"
	"github.com/daids/gif2esp/src/containers"
	"github.com/daids/gif2esp/src/global"
	"github.com/daids/gif2esp/src/header"
	"github.com/daids/gif2esp/src/image"
	"github.com/daids/gif2esp/src/job"
	"github.com/daids/gif2esp/src/pipeline"
	"github.com/daids/gif2esp/src/quantize"
	"github.com/daids/gif2esp/src/resample"
	"github.com/daids/gif2esp/src/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrUnknownJobProvider = fmt.Errorf("unknown job provider")
	ErrUnknownJobConsumer = fmt.Errorf("unknown job consumer")
	ErrNoFrames           = fmt.Errorf("source contains no frames")
)

type Task struct {
	id uuid.UUID

	job job.Job

	mtx       sync.Mutex
	started   bool
	stopped   bool
	completed bool
	failed    error

	files []job.File

	events chan TaskEvent

	ctx    context.Context
	cancel context.CancelFunc
}

func New(ctx context.Context, job job.Job) *Task {
	ctx, cancel := context.WithCancel(ctx)
	id, _ := uuid.NewRandom()
	return &Task{
		id:     id,
		ctx:    ctx,
		cancel: cancel,
		job:    job,
		events: make(chan TaskEvent, 20),
	}
}

func (t *Task) ID() uuid.UUID {
	return t.id
}

func (t *Task) Start(ctx global.Context) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.started || t.stopped || t.completed {
		return
	}

	t.started = true

	go t.start(ctx)
}

func (t *Task) start(ctx global.Context) {
	defer close(t.events)
	defer t.cancel()

	t.events <- TaskEvent{
		Type:      Started,
		Timestamp: time.Now(),
	}

	start := time.Now()

	var (
		err      error
		data     []byte
		anim     image.Animation
		frames   []pipeline.Frame
		artifact bytes.Buffer
	)

	switch t.job.RawProvider {
	case job.AwsProvider:
		providerDetails := job.RawProviderDetailsAws{}
		if err = json.Unmarshal(t.job.RawProviderDetails, &providerDetails); err != nil {
			goto completed
		}

		buf := Aws.NewWriteAtBuffer([]byte{})
		if err = ctx.Instances().AwsS3.DownloadFile(t.ctx, providerDetails.Bucket, providerDetails.Key, buf); err != nil {
			goto completed
		}

		data = buf.Bytes()
	case job.LocalProvider:
		providerDetails := job.RawProviderDetailsLocal{}
		if err = json.Unmarshal(t.job.RawProviderDetails, &providerDetails); err != nil {
			goto completed
		}

		if data, err = os.ReadFile(providerDetails.Path); err != nil {
			goto completed
		}
	default:
		err = ErrUnknownJobProvider
		goto completed
	}

	t.events <- TaskEvent{
		Type:      Downloaded,
		Timestamp: time.Now(),
	}

	if t.ctx.Err() != nil {
		err = t.ctx.Err()
		goto completed
	}

	if anim, err = containers.Decode(data, ctx.Config().MaxFrames); err != nil {
		goto completed
	}

	if len(anim.Frames) == 0 {
		err = ErrNoFrames
		goto completed
	}

	t.events <- TaskEvent{
		Type:      Decoded,
		Timestamp: time.Now(),
	}

	if frames, err = pipeline.Process(t.ctx, anim, t.quantizeConfig(ctx), t.job.Compress); err != nil {
		goto completed
	}

	t.events <- TaskEvent{
		Type:      Processed,
		Timestamp: time.Now(),
	}

	{
		payloads := make([][]byte, len(frames))
		for i, f := range frames {
			payloads[i] = f.Payload()
		}

		cfg := t.quantizeConfig(ctx)
		opt := header.Options{
			Name:       t.job.Name,
			Width:      cfg.Width,
			Height:     cfg.Height,
			FPS:        anim.FPS(),
			Compressed: t.job.Compress,
			FrameLen:   image.PackedLen(cfg.Width, cfg.Height),
			DelaysCS:   anim.Delays(),
		}

		if err = header.Emit(&artifact, opt, payloads); err != nil {
			goto completed
		}

		fileName := fmt.Sprintf("%s.h", t.job.Name)
		if err = t.deliver(ctx, fileName, artifact.Bytes()); err != nil {
			goto completed
		}

		t.files = append(t.files, job.File{
			Name:        fileName,
			Size:        artifact.Len(),
			ContentType: "text/x-c",
			Animated:    len(frames) > 1,
			FrameCount:  len(frames),
			FPS:         anim.FPS(),
			TimeTaken:   time.Since(start),
		})
	}

completed:
	t.completed = true
	t.failed = err
	if err != nil {
		t.events <- TaskEvent{
			Type:      Failed,
			Timestamp: time.Now(),
		}
	} else {
		t.events <- TaskEvent{
			Type:      Completed,
			Timestamp: time.Now(),
		}
	}
}

// quantizeConfig merges the job's settings over the configured display
// defaults.
func (t *Task) quantizeConfig(ctx global.Context) quantize.Config {
	display := ctx.Config().Display

	cfg := quantize.Config{
		Width:     display.Width,
		Height:    display.Height,
		Threshold: display.Threshold,
		Invert:    display.Invert,
		Dither:    display.Dither,
		Fit:       resample.ParseFit(display.Fit),
	}

	if t.job.Width > 0 {
		cfg.Width = t.job.Width
	}
	if t.job.Height > 0 {
		cfg.Height = t.job.Height
	}
	if t.job.Threshold > 0 {
		cfg.Threshold = t.job.Threshold
	}
	if t.job.Invert {
		cfg.Invert = true
	}
	if t.job.Dither != nil {
		cfg.Dither = *t.job.Dither
	}
	if t.job.Fit != "" {
		cfg.Fit = resample.ParseFit(t.job.Fit)
	}

	return cfg
}

func (t *Task) deliver(ctx global.Context, fileName string, artifact []byte) error {
	switch t.job.ResultConsumer {
	case job.AwsConsumer:
		consumerDetails := job.ResultConsumerDetailsAws{}
		if err := json.Unmarshal(t.job.ResultConsumerDetails, &consumerDetails); err != nil {
			return err
		}

		return ctx.Instances().AwsS3.UploadFile(
			t.ctx,
			consumerDetails.Bucket,
			path.Join(consumerDetails.KeyFolder, fileName),
			bytes.NewReader(artifact),
			utils.StringPointer("text/x-c"),
			aws.AclPublicRead,
			aws.DefaultCacheControl,
		)
	case job.LocalConsumer:
		consumerDetails := job.ResultConsumerDetailsLocal{}
		if err := json.Unmarshal(t.job.ResultConsumerDetails, &consumerDetails); err != nil {
			return err
		}

		if err := os.MkdirAll(consumerDetails.PathFolder, 0700); err != nil {
			return err
		}

		return os.WriteFile(path.Join(consumerDetails.PathFolder, fileName), artifact, 0600)
	default:
		return ErrUnknownJobConsumer
	}
}

func (t *Task) Stop() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.events <- TaskEvent{
		Type:      Stopped,
		Timestamp: time.Now(),
	}

	t.stopped = true
	t.cancel()
}

func (t *Task) Done() <-chan struct{} {
	return t.ctx.Done()
}

func (t *Task) Events() <-chan TaskEvent {
	return t.events
}

func (t *Task) Completed() bool {
	return t.completed
}

func (t *Task) Failed() error {
	return t.failed
}

func (t *Task) Started() bool {
	return t.started
}

func (t *Task) Stopped() bool {
	return t.stopped
}

func (t *Task) Files() []job.File {
	return t.files
}

func (t *Task) Job() job.Job {
	return t.job
}
