package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/bugsnag/panicwrap"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/daids/gif2esp/src/aws"
	"github.com/daids/gif2esp/src/configure"
	"github.com/daids/gif2esp/src/global"
	"github.com/daids/gif2esp/src/job"
	"github.com/daids/gif2esp/src/rmq"
	"github.com/daids/gif2esp/src/task"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	Version = "development"
	Unix    = ""
	Time    = "unknown"
	User    = "unknown"
)

func init() {
	debug.SetGCPercent(2000)
	if i, err := strconv.Atoi(Unix); err == nil {
		Time = time.Unix(int64(i), 0).Format(time.RFC3339)
	}
}

func main() {
	config := configure.New()

	exitStatus, err := panicwrap.BasicWrap(func(s string) {
		logrus.Error(s)
	})
	if err != nil {
		logrus.Error("failed to setup panic handler: ", err)
		os.Exit(2)
	}

	if exitStatus >= 0 {
		os.Exit(exitStatus)
	}

	if !config.NoHeader {
		logrus.Info("gif2esp")
		logrus.Infof("Version: %s", Version)
		logrus.Infof("build.Time: %s", Time)
		logrus.Infof("build.User: %s", User)
	}

	logrus.Debug("MaxProcs: ", runtime.GOMAXPROCS(0))

	c, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx := global.New(c, config)

	if config.Aws.Region != "" {
		ctx.Instances().AwsS3 = aws.NewS3(ctx)
	}

	if config.Input != "" {
		os.Exit(runLocal(ctx))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ctx.Instances().Rmq = rmq.New(ctx)

	go task.Listen(ctx)

	logrus.Info("running")

	done := make(chan struct{})
	go func() {
		<-sig
		cancel()
		go func() {
			select {
			case <-time.After(time.Minute):
			case <-sig:
			}
			logrus.Fatal("force shutdown")
		}()

		logrus.Info("shutting down")

		ctx.Instances().Rmq.Shutdown()

		ctx.Wait()

		close(done)
	}()

	<-done

	logrus.Info("shutdown")
	os.Exit(0)
}

// runLocal converts a single local file synchronously, writing the
// artifact next to the input unless an output directory is given.
func runLocal(ctx global.Context) int {
	config := ctx.Config()

	name := strings.TrimSuffix(filepath.Base(config.Input), filepath.Ext(config.Input))
	outDir := config.Output
	if outDir == "" {
		outDir = filepath.Dir(config.Input)
	}

	provider, _ := json.Marshal(job.RawProviderDetailsLocal{Path: config.Input})
	consumer, _ := json.Marshal(job.ResultConsumerDetailsLocal{PathFolder: outDir})

	j := job.Job{
		ID:                    name,
		Name:                  name,
		Compress:              config.Display.Compress,
		RawProvider:           job.LocalProvider,
		RawProviderDetails:    provider,
		ResultConsumer:        job.LocalConsumer,
		ResultConsumerDetails: consumer,
	}

	lCtx, cancel := context.WithTimeout(ctx, time.Second*time.Duration(config.MaxTaskDuration))
	defer cancel()

	t := task.New(lCtx, j)
	t.Start(ctx)

	for event := range t.Events() {
		logrus.Debug("task event: ", event.Type)
	}
	<-t.Done()

	if err := t.Failed(); err != nil {
		logrus.Error("conversion failed: ", err)
		return 1
	}

	for _, f := range t.Files() {
		logrus.Infof("wrote %s (%d bytes, %d frame(s))", f.Name, f.Size, f.FrameCount)
	}
	return 0
}
