package intent

// StatusMessage maps an intent's state to the user-facing status line shown on
// the booking detail screen. Pure; presentation decides how to render it.
func StatusMessage(i *Intent) string {
	switch i.Status() {
	case StatusApproved:
		return "Your cancellation has been approved."
	case StatusRejected:
		return "Your cancellation request was declined. Please contact support if you believe this is a mistake."
	default:
		if i.SubmittedToBackend() {
			return "Your cancellation request has been forwarded and is under review."
		}
		return "Your cancellation request is saved on this device but has not reached the booking service yet. " +
			"Please contact the landlord or support directly to make sure it is handled."
	}
}
