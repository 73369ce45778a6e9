package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seahorse-inn/seahorse-setup/internal/doctor"
	"github.com/seahorse-inn/seahorse-setup/internal/messages"
	"github.com/seahorse-inn/seahorse-setup/internal/update"
	"github.com/seahorse-inn/seahorse-setup/internal/updatewarn"
)

var checkForUpdate = update.Check

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root)

			var allResults []doctor.Result

			configResults, cfg := doctor.CheckConfig(root)
			allResults = append(allResults, configResults...)

			pythonResults, interpreter := doctor.CheckPython(cmd.Context(), pythonSystem, cfg)
			allResults = append(allResults, pythonResults...)
			if interpreter != "" {
				allResults = append(allResults, doctor.CheckPip(cmd.Context(), pythonSystem, interpreter)...)
			}

			allResults = append(allResults, doctor.CheckEnv(root)...)
			allResults = append(allResults, doctor.CheckSpeechModel(root)...)
			allResults = append(allResults, doctor.CheckBrowserCache()...)
			allResults = append(allResults, updateResult(cmd))

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// updateResult runs the release check as one more doctor row. Network
// problems are warnings; an update check never fails the doctor.
func updateResult(cmd *cobra.Command) doctor.Result {
	result := doctor.Result{CheckName: messages.DoctorCheckNameUpdate}
	if strings.TrimSpace(os.Getenv(updatewarn.EnvNoNetwork)) != "" {
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateSkippedFmt, updatewarn.EnvNoNetwork)
		result.Recommendation = fmt.Sprintf(messages.DoctorUpdateSkippedRecommendFmt, updatewarn.EnvNoNetwork)
		return result
	}

	checked, err := checkForUpdate(cmd.Context(), Version)
	switch {
	case err != nil && update.IsRateLimitError(err):
		result.Status = doctor.StatusWarn
		result.Message = messages.DoctorUpdateRateLimited
	case err != nil:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateFailedFmt, err)
		result.Recommendation = messages.DoctorUpdateFailedRecommend
	case checked.CurrentIsDev:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateDevBuildFmt, checked.Latest)
		result.Recommendation = messages.DoctorUpdateDevBuildRecommend
	case checked.Outdated:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateAvailableFmt, checked.Latest, checked.Current)
		result.Recommendation = messages.DoctorUpdateAvailableRecommend
	default:
		result.Status = doctor.StatusOK
		result.Message = fmt.Sprintf(messages.DoctorUpToDateFmt, checked.Current)
	}
	return result
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
