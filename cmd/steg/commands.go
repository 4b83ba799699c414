package main

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/svanichkin/steg/stegio"
)

func newEncodeCmd() *cobra.Command {
	var (
		input, output string
		text, file    string
		opts          stegio.Options
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a hidden message into an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var inline *string
			if cmd.Flags().Changed("message") {
				inline = &text
			}
			msg, err := stegio.ReadMessage(inline, file)
			if err != nil {
				return err
			}

			res, err := stegio.EncodeFile(cmd.Context(), input, output, msg, opts)
			stderr := cmd.ErrOrStderr()
			if res.Width > 0 {
				printer.Fprintf(stderr, "Image capacity: %d bytes, message size: %d bytes\n",
					res.Capacity, res.MessageBytes)
			}
			if err != nil {
				return err
			}

			if opts.Compress {
				printer.Fprintf(stderr, "Compressed payload: %d bytes\n", res.EmbeddedBytes)
			}
			fmt.Fprintf(stderr, "%s (%s) → %s (%s)\n",
				input, formatSize(fileSize(input)),
				output, formatSize(fileSize(output)),
			)
			fmt.Fprintf(stderr, "Message encoded successfully into %q, time=%s\n",
				output, formatDuration(res.Duration))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "input image path")
	f.StringVarP(&output, "output", "o", "", "output image path (.png or .qoi)")
	f.StringVarP(&text, "message", "m", "", "message to encode (text)")
	f.StringVar(&file, "message-file", "", "file containing the message to encode")
	f.BoolVarP(&opts.Compress, "zstd", "z", false, "zstd-compress the message before embedding")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var (
		input, output string
		opts          stegio.Options
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a hidden message from an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := stegio.DecodeFile(cmd.Context(), input, opts)
			if err != nil {
				return err
			}

			if output != "" {
				if err := stegio.WriteMessage(output, payload); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Decoded message written to %q\n", output)
				return nil
			}

			// Text when possible, hex otherwise.
			stdout := cmd.OutOrStdout()
			if utf8.Valid(payload) {
				fmt.Fprintln(stdout, string(payload))
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Message is not valid UTF-8, printing hex:")
			fmt.Fprintln(stdout, hex.EncodeToString(payload))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "input image with hidden message")
	f.StringVarP(&output, "output", "o", "", "optional file to write the decoded message to")
	f.BoolVarP(&opts.Compress, "zstd", "z", false, "payload was zstd-compressed on encode")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newCapacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity IMAGE...",
		Short: "Show how many message bytes each image can carry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := stegio.Inspect(cmd.Context(), args...)
			if err != nil {
				return err
			}
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, capacity %s bytes\n",
					r.Path, r.Width, r.Height, printer.Sprintf("%d", r.Capacity))
			}
			return nil
		},
	}
}
