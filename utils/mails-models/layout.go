package mailsmodels

import (
	"fmt"
)

const mime = "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

func render(subject, title, intro, highlight string) []byte {
	body := fmt.Sprintf(`
	<div style="background-color: #E11D74; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">%s</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">%s</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #E11D74; text-align:center;">%s</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, title, intro, highlight)

	return []byte("Subject: " + subject + "\r\n" + mime + body)
}
