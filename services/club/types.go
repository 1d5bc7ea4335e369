package club

type Club struct {
	ID        string `json:"clubId" firestore:"-"`
	Name      string `json:"name" firestore:"name"`
	Owner     string `json:"owner" firestore:"owner"`
	AvatarURL string `json:"avatarUrl" firestore:"avatarUrl"`
}
