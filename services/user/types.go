package user

type User struct {
	ID          string `json:"id" firestore:"-"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"displayName" firestore:"displayName"`
	AvatarURL   string `json:"avatarUrl" firestore:"avatarUrl"`
}
