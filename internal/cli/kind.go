package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/awc-hub/awchub/internal/content"
)

// kindsValue is a repeatable --kind flag. An empty set means every kind.
type kindsValue struct {
	kinds []content.Kind
}

var _ pflag.Value = (*kindsValue)(nil)

func (v *kindsValue) String() string {
	names := make([]string, len(v.kinds))
	for i, k := range v.kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

// Set accepts one kind or a comma-separated list.
func (v *kindsValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		kind, err := content.ParseKind(part)
		if err != nil {
			return err
		}
		if !v.has(kind) {
			v.kinds = append(v.kinds, kind)
		}
	}
	return nil
}

func (v *kindsValue) Type() string {
	return "kind"
}

func (v *kindsValue) has(kind content.Kind) bool {
	for _, k := range v.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Kinds returns the selected kinds in navigation order.
func (v *kindsValue) Kinds() []content.Kind {
	if len(v.kinds) == 0 {
		return content.Kinds
	}
	out := make([]content.Kind, 0, len(v.kinds))
	for _, k := range content.Kinds {
		if v.has(k) {
			out = append(out, k)
		}
	}
	return out
}

func kindNames() []string {
	names := make([]string, len(content.Kinds))
	for i, k := range content.Kinds {
		names[i] = k.String()
	}
	return names
}

func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return kindNames(), cobra.ShellCompDirectiveNoFileComp
}

// unknownKindError reports a kind argument that ParseKind rejected.
func unknownKindError(err error) error {
	return handleErrorMsg(ErrUnknownKind, err.Error(), "Valid kinds: "+strings.Join(kindNames(), ", "))
}
