package mailsmodels

// PasswordReset carries the one-time code used to choose a new password.
func PasswordReset(code string) []byte {
	return render(
		"FunFans password reset",
		"Reset your password",
		"Enter the following code in the app to choose a new password. It expires in 15 minutes.",
		code,
	)
}
