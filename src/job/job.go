package job

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Job describes one conversion: where the raw image comes from, the
// display geometry and quantization settings, and where the generated
// artifact goes.
type Job struct {
	ID string `json:"id"`

	// Name parameterizes the identifiers in the emitted C source.
	Name string `json:"name"`

	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Threshold int    `json:"threshold"`
	Invert    bool   `json:"invert"`
	Dither    *bool  `json:"dither"`
	Fit       string `json:"fit"`
	Compress  bool   `json:"compress"`

	RawProvider           RawProvider         `json:"raw_provider"`
	RawProviderDetails    jsoniter.RawMessage `json:"raw_provider_details"`
	ResultConsumer        ResultConsumer      `json:"result_consumer"`
	ResultConsumerDetails jsoniter.RawMessage `json:"result_consumer_details"`
}

// File describes the generated artifact reported back on the result
// queue.
type File struct {
	Name        string        `json:"name"`
	Size        int           `json:"size"`
	ContentType string        `json:"content_type"`
	Animated    bool          `json:"animated"`
	FrameCount  int           `json:"frame_count"`
	FPS         int           `json:"fps"`
	TimeTaken   time.Duration `json:"time_taken"`
}

type RawProviderDetailsAws struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type RawProviderDetailsLocal struct {
	Path string `json:"path"`
}

type ResultConsumerDetailsAws struct {
	Bucket    string `json:"bucket"`
	KeyFolder string `json:"key_folder"`
}

type ResultConsumerDetailsLocal struct {
	PathFolder string `json:"path_folder"`
}

type RawProvider string

const (
	AwsProvider   RawProvider = "aws"
	LocalProvider RawProvider = "local"
)

type ResultConsumer string

const (
	AwsConsumer   ResultConsumer = "aws"
	LocalConsumer ResultConsumer = "local"
)
