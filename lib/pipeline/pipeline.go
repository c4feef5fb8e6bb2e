package pipeline

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/fmtsize/lib/common"
	"github.com/ValentinKolb/fmtsize/lib/compress"
	"github.com/ValentinKolb/fmtsize/lib/dataset"
	"github.com/ValentinKolb/fmtsize/lib/report"
	"github.com/ValentinKolb/fmtsize/lib/serializer"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"io"
	"os"
	"path/filepath"
	"time"
)

// baselineFormat is the format all other artifacts are compared to
const baselineFormat = "csv"

var ErrVerification = errors.New("artifact does not match the dataset")

// Pipeline runs the load, serialize, compress and report stages
type Pipeline struct {
	conf        common.Config
	out         io.Writer
	serializers []serializer.ISerializer
	metrics     *metrics.Set
	logger      logger.ILogger
}

// New creates a pipeline writing the report to out
func New(conf common.Config, out io.Writer) *Pipeline {
	return &Pipeline{
		conf:        conf,
		out:         out,
		serializers: serializer.All(),
		metrics:     metrics.NewSet(),
		logger:      logger.GetLogger(common.LoggerPipeline),
	}
}

// Metrics returns the metrics collected so far
func (p *Pipeline) Metrics() *metrics.Set {
	return p.metrics
}

// Run executes all stages and returns the printed report
func (p *Pipeline) Run() (*report.Report, error) {
	if err := p.conf.Validate(); err != nil {
		return nil, err
	}

	p.logger.Infof("Generate data structure")
	start := time.Now()
	ds, err := dataset.LoadFile(p.conf.InputPath, p.conf.RecordCount)
	if err != nil {
		return nil, err
	}
	p.observe("load", start)

	artifacts := make([]report.Artifact, 0, len(p.serializers))
	for _, s := range p.serializers {
		artifact, err := p.write(s, ds)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	p.logger.Infof("delete .gz files from the last run")
	if _, err := compress.RemoveStale(p.conf.OutputDir, common.OutputPrefix); err != nil {
		return nil, err
	}

	p.logger.Infof("gzipping files")
	for i, a := range artifacts {
		if err := p.compress(p.serializers[i], a, ds); err != nil {
			return nil, err
		}
	}

	r, err := report.Collect(artifacts, baselineFormat)
	if err != nil {
		return nil, err
	}
	if err := r.Print(p.out); err != nil {
		return nil, err
	}

	if p.conf.Metrics {
		fmt.Fprintln(p.out)
		p.metrics.WritePrometheus(p.out)
	}
	return r, nil
}

// --------------------------------------------------------------------------
// Stages
// --------------------------------------------------------------------------

// write serializes the dataset and stores it as output.<format>
func (p *Pipeline) write(s serializer.ISerializer, ds *dataset.Dataset) (report.Artifact, error) {
	p.logger.Infof("write %s", s.Name())
	start := time.Now()

	data, err := s.Serialize(ds)
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to serialize %s: %w", s.Name(), err)
	}

	path := ArtifactPath(p.conf.OutputDir, s.Name())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	p.observe("serialize_"+s.Name(), start)
	p.countBytes(s.Name(), "raw", len(data))

	if p.conf.Verify {
		if err := p.verify(s, path, data, ds); err != nil {
			return report.Artifact{}, err
		}
	}
	return report.Artifact{Name: s.Name(), Path: path}, nil
}

// compress gzips the artifact and verifies the compressed content if enabled
func (p *Pipeline) compress(s serializer.ISerializer, a report.Artifact, ds *dataset.Dataset) error {
	p.logger.Infof("  gzip %s", filepath.Base(a.Path))
	start := time.Now()

	gzPath, err := compress.GzipFile(a.Path)
	if err != nil {
		return err
	}
	p.observe("gzip_"+a.Name, start)

	info, err := os.Stat(gzPath)
	if err != nil {
		return fmt.Errorf("failed to read size of %s: %w", gzPath, err)
	}
	p.countBytes(a.Name, "gzip", int(info.Size()))

	if p.conf.Verify {
		data, err := compress.Gunzip(gzPath)
		if err != nil {
			return err
		}
		return p.verify(s, gzPath, data, ds)
	}
	return nil
}

// verify decodes data with s and compares the result with the dataset
func (p *Pipeline) verify(s serializer.ISerializer, path string, data []byte, ds *dataset.Dataset) error {
	decoded, err := s.Deserialize(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if !decoded.Equal(ds) {
		return fmt.Errorf("%w: %s", ErrVerification, path)
	}
	p.logger.Debugf("verified %s", path)
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// ArtifactPath returns the path of the raw artifact of a format
func ArtifactPath(dir, format string) string {
	return filepath.Join(dir, common.OutputPrefix+"."+format)
}

func (p *Pipeline) observe(stage string, start time.Time) {
	p.metrics.GetOrCreateSummary(fmt.Sprintf(`fmtsize_stage_duration_seconds{stage=%q}`, stage)).UpdateDuration(start)
}

func (p *Pipeline) countBytes(format, kind string, n int) {
	p.metrics.GetOrCreateCounter(fmt.Sprintf(`fmtsize_artifact_bytes_total{format=%q,kind=%q}`, format, kind)).Add(n)
}
