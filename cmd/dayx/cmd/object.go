package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
	"github.com/msto63/dayx/internal/codec"
)

func newObjectCmd(a *app) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "object",
		Short: "Convert between values and {tz, time} objects",
		Long: `Converts values to and from their structured {tz, time} object form.
CBOR objects are read and written as hex.`,
	}

	encodeCmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Print the object form of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := codec.ParseFormat(encoding)
			if err != nil {
				return err
			}
			v, err := a.value(args[0])
			if err != nil {
				return err
			}
			if a.hasZone {
				v = v.WithZone(a.zoneHint)
			}

			data, err := codec.Encode(v, format)
			if err != nil {
				return err
			}
			if format == codec.FormatCBOR {
				a.println(cmd, hex.EncodeToString(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n")+"\n")
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [object]",
		Short: "Read an object (argument or stdin) and print its value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := codec.ParseFormat(encoding)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 && args[0] != "-" {
				data = []byte(args[0])
			} else if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
				return mdwerror.Wrap(err, "read object").
					WithCode(mdwerror.CodeInternal).
					WithOperation("dayx.object")
			}

			if format == codec.FormatCBOR {
				raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
				if err != nil {
					return mdwerror.Wrap(err, "decode hex").
						WithCode(mdwerror.CodeInvalidFormat).
						WithOperation("dayx.object")
				}
				data = raw
			}

			v, err := codec.Decode(a.cal, data, format)
			if err != nil {
				return err
			}
			a.println(cmd, a.render(v))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&encoding, "encoding", "e", "json", "object encoding: json|yaml|cbor")
	cmd.AddCommand(encodeCmd, decodeCmd)
	return cmd
}
