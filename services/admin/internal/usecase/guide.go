package usecase

import "pilates-club/services/admin/internal/entity"

// Guide is the operator handbook served on the admin guide page.
func Guide() []entity.GuideSection {
	return []entity.GuideSection{
		{
			Title: "Membership requests",
			Path:  "/admin/pending",
			Steps: []string{
				"New sign-ups appear as a count next to Members in the navigation.",
				"Open Pending to review each applicant and approve or reject.",
				"Approved members can log in immediately and get the default expiration from Approval settings.",
				"Rejected members are cancelled and cannot log in; ask them to apply again if needed.",
			},
		},
		{
			Title: "Members",
			Path:  "/admin/members",
			Steps: []string{
				"Add a member with name, email, a 6-digit PIN and an optional expiration date.",
				"Change status one at a time or select several members for a bulk change.",
				"Set an expiration date directly or pick a number of months from today.",
				"Active members past their expiration date are moved to expired automatically every sweep interval.",
			},
		},
		{
			Title: "Contents",
			Path:  "/admin/contents",
			Steps: []string{
				"Upload the video to YouTube as private or unlisted and copy its full URL.",
				"Create the content with a title, description and the copied URL.",
				"Generate a video key or type your own; keys must be unique.",
				"Use the visibility toggle or bulk visibility to publish or hide videos.",
			},
		},
		{
			Title: "Coupons",
			Path:  "/admin/coupons",
			Steps: []string{
				"Create a code with the number of membership months it grants and an expiry date.",
				"A coupon can be redeemed once, at registration.",
				"Used coupons are kept for the record and cannot be deleted.",
			},
		},
		{
			Title: "Approval settings",
			Path:  "/admin/approval-settings",
			Steps: []string{
				"Turn on auto-approve to activate new sign-ups without review.",
				"Default expiration months (1 to 120) applies to approvals and registrations without a coupon.",
			},
		},
		{
			Title: "Member access",
			Path:  "/login",
			Steps: []string{
				"Members log in with their email and 6-digit PIN and pick a video from the catalog.",
				"The same flow works on mobile browsers.",
				"Keep the YouTube account secure so videos are not shared outside the club.",
			},
		},
	}
}
