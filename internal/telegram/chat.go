package telegram

type ChatPhoto struct {
	SmallFileID       *string `json:"small_file_id,omitempty"`
	SmallFileUniqueID *string `json:"small_file_unique_id,omitempty"`
	BigFileID         *string `json:"big_file_id,omitempty"`
	BigFileUniqueID   *string `json:"big_file_unique_id,omitempty"`
}

type ChatInviteLink struct {
	InviteLink              *string `json:"invite_link,omitempty"`
	Creator                 *User   `json:"creator,omitempty"`
	CreatesJoinRequest      *bool   `json:"creates_join_request,omitempty"`
	IsPrimary               *bool   `json:"is_primary,omitempty"`
	IsRevoked               *bool   `json:"is_revoked,omitempty"`
	Name                    *string `json:"name,omitempty"`
	ExpireDate              *int64  `json:"expire_date,omitempty"`
	MemberLimit             *int    `json:"member_limit,omitempty"`
	PendingJoinRequestCount *int    `json:"pending_join_request_count,omitempty"`
}

type ChatAdministratorRights struct {
	IsAnonymous         *bool `json:"is_anonymous,omitempty"`
	CanManageChat       *bool `json:"can_manage_chat,omitempty"`
	CanDeleteMessages   *bool `json:"can_delete_messages,omitempty"`
	CanManageVideoChats *bool `json:"can_manage_video_chats,omitempty"`
	CanRestrictMembers  *bool `json:"can_restrict_members,omitempty"`
	CanPromoteMembers   *bool `json:"can_promote_members,omitempty"`
	CanChangeInfo       *bool `json:"can_change_info,omitempty"`
	CanInviteUsers      *bool `json:"can_invite_users,omitempty"`
	CanPostMessages     *bool `json:"can_post_messages,omitempty"`
	CanEditMessages     *bool `json:"can_edit_messages,omitempty"`
	CanPinMessages      *bool `json:"can_pin_messages,omitempty"`
}

// ChatMember is one of ChatMemberOwner, ChatMemberAdministrator,
// ChatMemberMember, ChatMemberRestricted, ChatMemberLeft or
// ChatMemberBanned. The wire "status" tells them apart.
type ChatMember interface {
	chatMember()
	// MemberUser returns the user the membership describes.
	MemberUser() *User
}

type ChatMemberOwner struct {
	Status      *string `json:"status,omitempty" schema:"required,const=creator"`
	User        *User   `json:"user,omitempty" schema:"required"`
	IsAnonymous *bool   `json:"is_anonymous,omitempty"`
	CustomTitle *string `json:"custom_title,omitempty"`
}

type ChatMemberAdministrator struct {
	Status              *string `json:"status,omitempty" schema:"required,const=administrator"`
	User                *User   `json:"user,omitempty" schema:"required"`
	CanBeEdited         *bool   `json:"can_be_edited,omitempty"`
	IsAnonymous         *bool   `json:"is_anonymous,omitempty"`
	CanManageChat       *bool   `json:"can_manage_chat,omitempty"`
	CanDeleteMessages   *bool   `json:"can_delete_messages,omitempty"`
	CanManageVideoChats *bool   `json:"can_manage_video_chats,omitempty"`
	CanRestrictMembers  *bool   `json:"can_restrict_members,omitempty"`
	CanPromoteMembers   *bool   `json:"can_promote_members,omitempty"`
	CanChangeInfo       *bool   `json:"can_change_info,omitempty"`
	CanInviteUsers      *bool   `json:"can_invite_users,omitempty"`
	CanPostMessages     *bool   `json:"can_post_messages,omitempty"`
	CanEditMessages     *bool   `json:"can_edit_messages,omitempty"`
	CanPinMessages      *bool   `json:"can_pin_messages,omitempty"`
	CustomTitle         *string `json:"custom_title,omitempty"`
}

type ChatMemberMember struct {
	Status *string `json:"status,omitempty" schema:"required,const=member"`
	User   *User   `json:"user,omitempty" schema:"required"`
}

type ChatMemberRestricted struct {
	Status                *string `json:"status,omitempty" schema:"required,const=restricted"`
	User                  *User   `json:"user,omitempty" schema:"required"`
	IsMember              *bool   `json:"is_member,omitempty"`
	CanChangeInfo         *bool   `json:"can_change_info,omitempty"`
	CanInviteUsers        *bool   `json:"can_invite_users,omitempty"`
	CanPinMessages        *bool   `json:"can_pin_messages,omitempty"`
	CanSendMessages       *bool   `json:"can_send_messages,omitempty"`
	CanSendMediaMessages  *bool   `json:"can_send_media_messages,omitempty"`
	CanSendPolls          *bool   `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  *bool   `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews *bool   `json:"can_add_web_page_previews,omitempty"`
	UntilDate             *int64  `json:"until_date,omitempty"`
}

type ChatMemberLeft struct {
	Status *string `json:"status,omitempty" schema:"required,const=left"`
	User   *User   `json:"user,omitempty" schema:"required"`
}

// ChatMemberBanned is a user removed from the chat; the wire status is
// "kicked".
type ChatMemberBanned struct {
	Status    *string `json:"status,omitempty" schema:"required,const=kicked"`
	User      *User   `json:"user,omitempty" schema:"required"`
	UntilDate *int64  `json:"until_date,omitempty"`
}

func (*ChatMemberOwner) chatMember()         {}
func (*ChatMemberAdministrator) chatMember() {}
func (*ChatMemberMember) chatMember()        {}
func (*ChatMemberRestricted) chatMember()    {}
func (*ChatMemberLeft) chatMember()          {}
func (*ChatMemberBanned) chatMember()        {}

func (m *ChatMemberOwner) MemberUser() *User         { return m.User }
func (m *ChatMemberAdministrator) MemberUser() *User { return m.User }
func (m *ChatMemberMember) MemberUser() *User        { return m.User }
func (m *ChatMemberRestricted) MemberUser() *User    { return m.User }
func (m *ChatMemberLeft) MemberUser() *User          { return m.User }
func (m *ChatMemberBanned) MemberUser() *User        { return m.User }

// IsPresent reports whether m counts as being in the chat.
func IsPresent(m ChatMember) bool {
	switch v := m.(type) {
	case *ChatMemberOwner, *ChatMemberAdministrator, *ChatMemberMember:
		return true
	case *ChatMemberRestricted:
		return Deref(v.IsMember)
	}
	return false
}

// ChatMemberUpdated is a change in the status of a chat member.
type ChatMemberUpdated struct {
	Chat          *Chat           `json:"chat,omitempty"`
	From          *User           `json:"from,omitempty"`
	Date          *int64          `json:"date,omitempty"`
	OldChatMember ChatMember      `json:"old_chat_member,omitempty"`
	NewChatMember ChatMember      `json:"new_chat_member,omitempty"`
	InviteLink    *ChatInviteLink `json:"invite_link,omitempty"`
}

// ChatJoinRequest is a request to join a chat.
type ChatJoinRequest struct {
	Chat       *Chat           `json:"chat,omitempty"`
	From       *User           `json:"from,omitempty"`
	Date       *int64          `json:"date,omitempty"`
	Bio        *string         `json:"bio,omitempty"`
	InviteLink *ChatInviteLink `json:"invite_link,omitempty"`
}

type ChatPermissions struct {
	CanSendMessages       *bool `json:"can_send_messages,omitempty"`
	CanSendMediaMessages  *bool `json:"can_send_media_messages,omitempty"`
	CanSendPolls          *bool `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  *bool `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews *bool `json:"can_add_web_page_previews,omitempty"`
	CanChangeInfo         *bool `json:"can_change_info,omitempty"`
	CanInviteUsers        *bool `json:"can_invite_users,omitempty"`
	CanPinMessages        *bool `json:"can_pin_messages,omitempty"`
}

type ChatLocation struct {
	Location *Location `json:"location,omitempty"`
	Address  *string   `json:"address,omitempty"`
}
