package compare

import (
	"github.com/ValentinKolb/fmtsize/cmd/util"
	"github.com/ValentinKolb/fmtsize/lib/common"
	"github.com/ValentinKolb/fmtsize/lib/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

var (
	compareCmdConfig = common.DefaultConfig()
	CompareCmd       = &cobra.Command{
		Use:   "compare",
		Short: "Write the dictionary in all formats and compare their sizes",
		Long: `Load the dictionary, write it as csv, json, pretty-json, bson, xml and pretty-xml,
gzip every file and print the size of each artifact relative to csv.
The configuration can be set via command line flags or environment variables.
The format of the environment variables is FMTSIZE_<flag> (e.g. FMTSIZE_RECORDS=1000)`,
		Args:    cobra.NoArgs,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "input"
	CompareCmd.Flags().String(key, common.DefaultInputPath, util.WrapString("Path of the latin-1 encoded dictionary (one field per line, CRLF line endings)"))

	key = "records"
	CompareCmd.Flags().Int(key, common.DefaultRecordCount, util.WrapString("Number of seven line records to read from the dictionary, the first record is the header"))

	key = "output-dir"
	CompareCmd.Flags().String(key, common.DefaultOutputDir, util.WrapString("Directory the output.* files are written to"))

	key = "verify"
	CompareCmd.Flags().Bool(key, false, util.WrapString("Decode every written artifact (raw and gzip) and compare it with the dictionary"))

	key = "metrics"
	CompareCmd.Flags().Bool(key, false, util.WrapString("Print stage durations and byte counters in prometheus text format after the report"))

	key = "log-level"
	CompareCmd.Flags().String(key, common.DefaultLogLevel, util.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	compareCmdConfig.InputPath = viper.GetString("input")
	compareCmdConfig.RecordCount = viper.GetInt("records")
	compareCmdConfig.OutputDir = viper.GetString("output-dir")
	compareCmdConfig.Verify = viper.GetBool("verify")
	compareCmdConfig.Metrics = viper.GetBool("metrics")
	compareCmdConfig.LogLevel = viper.GetString("log-level")

	if err := compareCmdConfig.Validate(); err != nil {
		return err
	}
	return common.InitLoggers(compareCmdConfig)
}

// run executes the comparison pipeline
func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	if viper.GetString("log-level") == "debug" {
		cmd.Println(compareCmdConfig.String())
	}

	_, err := pipeline.New(compareCmdConfig, os.Stdout).Run()
	return err
}
