package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/kbukum/statuscode/lookup"
	"github.com/kbukum/statuscode/status"
	"github.com/kbukum/statuscode/validation"
	"github.com/kbukum/statuscode/version"
)

func runList(_ context.Context, a *app, _ []string) int {
	entries := lookup.Catalog()
	if a.jsonOutput() {
		return a.writeJSON(entries)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tNAME\tSYMBOL\tHTTP\tAPP CODE\tMESSAGE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n", e.Value, e.Name, dash(e.Symbol), e.HTTPStatus, e.AppCode, e.Message)
	}
	return a.flush(tw)
}

func runDescribe(_ context.Context, a *app, args []string) int {
	code, err := lookup.Resolve(args[0])
	if err != nil {
		return a.fail(err)
	}
	desc := lookup.Describe(code)
	if a.jsonOutput() {
		return a.writeJSON(desc)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	writeDescription(tw, "", desc)
	return a.flush(tw)
}

func runCompare(_ context.Context, a *app, args []string) int {
	cmp, err := lookup.Compare(args[0], args[1])
	if err != nil {
		return a.fail(err)
	}

	exit := exitOK
	if !cmp.Equivalent {
		exit = exitDiffer
	}
	if a.jsonOutput() {
		if code := a.writeJSON(cmp); code != exitOK {
			return code
		}
		return exit
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	writeDescription(tw, "a.", cmp.A)
	writeDescription(tw, "b.", cmp.B)
	fmt.Fprintf(tw, "equivalent\t%t\n", cmp.Equivalent)
	if code := a.flush(tw); code != exitOK {
		return code
	}
	return exit
}

func runDomainID(_ context.Context, a *app, args []string) int {
	if appErr := validation.New().DomainUUID("uuid", args[0]).Validate(); appErr != nil {
		return a.fail(appErr)
	}
	id, err := status.DomainIDFromUUID(args[0])
	if err != nil {
		return a.fail(err)
	}
	if a.jsonOutput() {
		return a.writeJSON(map[string]any{"uuid": args[0], "domain_id": id.String(), "value": uint64(id)})
	}
	fmt.Fprintln(a.stdout, id)
	return exitOK
}

func runVersion(_ context.Context, a *app, _ []string) int {
	if a.jsonOutput() {
		return a.writeJSON(version.GetVersionInfo())
	}
	fmt.Fprintln(a.stdout, version.GetFullVersion())
	return exitOK
}

func writeDescription(w io.Writer, prefix string, d lookup.Description) {
	rows := [][2]string{
		{"domain", d.Domain},
		{"domain_id", d.DomainID},
		{"code", d.Code},
		{"errc", d.Errc},
		{"symbol", dash(d.Symbol)},
		{"message", d.Message},
		{"failure", strconv.FormatBool(d.Failure)},
	}
	if d.Failure {
		rows = append(rows,
			[2]string{"app_code", string(d.AppCode)},
			[2]string{"http_status", strconv.Itoa(d.HTTPStatus)},
			[2]string{"retryable", strconv.FormatBool(d.Retryable)},
		)
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s%s\t%s\n", prefix, r[0], r[1])
	}
}

func (a *app) writeJSON(v any) int {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return a.fail(err)
	}
	return exitOK
}

func (a *app) flush(tw *tabwriter.Writer) int {
	if err := tw.Flush(); err != nil {
		return a.fail(err)
	}
	return exitOK
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
