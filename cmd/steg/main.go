// Command steg hides messages in lossless images and reads them back.
//
//	steg encode -i in.png -o out.png -m "text" [-z]
//	steg encode -i in.png -o out.qoi --message-file secret.bin
//	steg decode -i out.png [-o message.bin] [-z]
//	steg capacity a.png b.qoi ...
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "steg",
		Short:         "Hide and recover messages in the low bits of PNG/QOI images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newCapacityCmd())
	return root
}

// printer groups digits in the byte counts shown to the user.
var printer = message.NewPrinter(language.English)

func formatSize(size int64) string {
	if size < 1024*1024 {
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	}
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
