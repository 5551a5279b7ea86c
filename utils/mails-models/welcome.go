package mailsmodels

import "fmt"

func Welcome(username string, vitrineURL string) []byte {
	return render(
		"Welcome to FunFans",
		fmt.Sprintf("Welcome %s!", username),
		"Your account is ready. Share your vitrine with your fans:",
		vitrineURL,
	)
}
