package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	app "body-measure/internal/application"
	"body-measure/internal/infrastructure/render"
)

// Режимы вывода результата
const (
	OutputWindow = "window"
	OutputFile   = "file"
	OutputNone   = "none"
)

// Источники точек позы и контура
const (
	SourceDNN  = "dnn"
	SourceFile = "file"
	SourceMask = "mask"
)

type Config struct {
	ImagePath    string  `validate:"required"`
	HeightInches float64 `validate:"gt=0"`

	OutputMode   string `validate:"oneof=window file none"`
	OutputPath   string `validate:"required_if=OutputMode file"`
	MarkerColors string `validate:"required"`

	LandmarkSource string `validate:"oneof=dnn file"`
	LandmarksFile  string `validate:"required_if=LandmarkSource file"`
	PoseModelPath  string `validate:"required_if=LandmarkSource dnn"`
	PoseConfigPath string

	OutlineSource         string `validate:"oneof=dnn mask"`
	MaskFile              string `validate:"required_if=OutlineSource mask"`
	SegmentationModelPath string `validate:"required_if=OutlineSource dnn"`

	LogLevel string `validate:"oneof=debug info warn error"`
}

// Load собирает конфигурацию: значения по умолчанию, затем переменные окружения
// (в том числе из .env), затем флаги командной строки.
// Позиционный аргумент считается путём к изображению, флаги можно ставить и после него.
// На -h печатает справку в stderr и возвращает flag.ErrHelp.
func Load(args []string) (*Config, error) {
	return load(args, os.Stderr)
}

func load(args []string, usage io.Writer) (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ImagePath:             os.Getenv("MEASURE_IMAGE"),
		HeightInches:          app.DefaultHeightInches,
		OutputMode:            envOr("MEASURE_OUTPUT", OutputWindow),
		OutputPath:            os.Getenv("MEASURE_OUTPUT_PATH"),
		MarkerColors:          envOr("MEASURE_MARKER_COLORS", render.DefaultMarkerColors),
		LandmarkSource:        envOr("MEASURE_LANDMARKS_SOURCE", SourceDNN),
		LandmarksFile:         os.Getenv("MEASURE_LANDMARKS_FILE"),
		PoseModelPath:         os.Getenv("MEASURE_POSE_MODEL"),
		PoseConfigPath:        os.Getenv("MEASURE_POSE_CONFIG"),
		OutlineSource:         envOr("MEASURE_OUTLINE_SOURCE", SourceDNN),
		MaskFile:              os.Getenv("MEASURE_MASK_FILE"),
		SegmentationModelPath: os.Getenv("MEASURE_SEGMENTATION_MODEL"),
		LogLevel:              envOr("MEASURE_LOG_LEVEL", "info"),
	}

	if v := os.Getenv("MEASURE_HEIGHT_INCHES"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("MEASURE_HEIGHT_INCHES: %w", err)
		}
		cfg.HeightInches = h
	}

	fs := flag.NewFlagSet("body-measure", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ImagePath, "image", cfg.ImagePath, "path to the input photo")
	fs.Float64Var(&cfg.HeightInches, "height", cfg.HeightInches, "subject height in inches used for calibration")
	fs.StringVar(&cfg.OutputMode, "output", cfg.OutputMode, "output mode: window, file or none")
	fs.StringVar(&cfg.OutputPath, "output-path", cfg.OutputPath, "annotated image path for -output=file")
	fs.StringVar(&cfg.MarkerColors, "colors", cfg.MarkerColors, "marker colors: left shoulder, right shoulder, leftmost, rightmost")
	fs.StringVar(&cfg.LandmarkSource, "landmarks", cfg.LandmarkSource, "landmark source: dnn or file")
	fs.StringVar(&cfg.LandmarksFile, "landmarks-file", cfg.LandmarksFile, "JSON file with normalized landmarks")
	fs.StringVar(&cfg.PoseModelPath, "pose-model", cfg.PoseModelPath, "pose network weights")
	fs.StringVar(&cfg.PoseConfigPath, "pose-config", cfg.PoseConfigPath, "pose network definition")
	fs.StringVar(&cfg.OutlineSource, "outline", cfg.OutlineSource, "outline source: dnn or mask")
	fs.StringVar(&cfg.MaskFile, "mask-file", cfg.MaskFile, "foreground mask image")
	fs.StringVar(&cfg.SegmentationModelPath, "segmentation-model", cfg.SegmentationModelPath, "segmentation network")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	// flag останавливается на первом позиционном аргументе, поэтому разбираем остаток заново
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				fmt.Fprintln(usage, "Usage: body-measure [flags] <image>")
				fs.SetOutput(usage)
				fs.PrintDefaults()
				return nil, err
			}
			return nil, fmt.Errorf("parse flags: %w", err)
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	switch len(positional) {
	case 0:
	case 1:
		cfg.ImagePath = positional[0]
	default:
		return nil, fmt.Errorf("expected one image path, got %d: %v", len(positional), positional)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля и допустимые значения
func (c *Config) Validate() error {
	if math.IsInf(c.HeightInches, 0) || math.IsNaN(c.HeightInches) {
		return fmt.Errorf("invalid config: HeightInches must be finite, got %v", c.HeightInches)
	}

	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("invalid config: %s failed %q check", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
