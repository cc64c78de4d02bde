package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

// Memory is an in-process Store used by the test suite and by server runs
// without a DATABASE_URL.
type Memory struct {
	mu           sync.Mutex
	users        map[int64]model.User
	teachers     map[int64]model.Teacher
	sessions     map[int64]model.Session
	participants map[int64]map[int64]struct{} // session id -> attendee user ids
	nextUser     int64
	nextTeacher  int64
	nextSession  int64
}

func NewMemory() *Memory {
	return &Memory{
		users:        make(map[int64]model.User),
		teachers:     make(map[int64]model.Teacher),
		sessions:     make(map[int64]model.Session),
		participants: make(map[int64]map[int64]struct{}),
	}
}

func (m *Memory) CreateUser(_ context.Context, user model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return model.User{}, ErrDuplicate
		}
	}
	m.nextUser++
	user.ID = m.nextUser
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = user
	return user, nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (m *Memory) GetUserByID(_ context.Context, id int64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return user, nil
}

func (m *Memory) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	for _, attendees := range m.participants {
		delete(attendees, id)
	}
	return nil
}

func (m *Memory) CreateTeacher(_ context.Context, teacher model.Teacher) (model.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextTeacher++
	teacher.ID = m.nextTeacher
	now := time.Now().UTC()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	m.teachers[teacher.ID] = teacher
	return teacher, nil
}

func (m *Memory) ListTeachers(_ context.Context) ([]model.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	teachers := make([]model.Teacher, 0, len(m.teachers))
	for _, teacher := range m.teachers {
		teachers = append(teachers, teacher)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (m *Memory) GetTeacher(_ context.Context, id int64) (model.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	teacher, ok := m.teachers[id]
	if !ok {
		return model.Teacher{}, ErrNotFound
	}
	return teacher, nil
}

func (m *Memory) CreateSession(_ context.Context, session model.Session) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teachers[session.TeacherID]; !ok {
		return model.Session{}, ErrNotFound
	}
	m.nextSession++
	session.ID = m.nextSession
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.Users = nil
	m.sessions[session.ID] = session
	m.participants[session.ID] = make(map[int64]struct{})
	return m.withAttendees(session), nil
}

func (m *Memory) ListSessions(_ context.Context) ([]model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions := make([]model.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, m.withAttendees(session))
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions, nil
}

func (m *Memory) GetSession(_ context.Context, id int64) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return model.Session{}, ErrNotFound
	}
	return m.withAttendees(session), nil
}

func (m *Memory) UpdateSession(_ context.Context, id int64, session model.Session) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.sessions[id]
	if !ok {
		return model.Session{}, ErrNotFound
	}
	if _, ok := m.teachers[session.TeacherID]; !ok {
		return model.Session{}, ErrNotFound
	}
	existing.Name = session.Name
	existing.Description = session.Description
	existing.Date = session.Date
	existing.TeacherID = session.TeacherID
	existing.UpdatedAt = time.Now().UTC()
	m.sessions[id] = existing
	return m.withAttendees(existing), nil
}

func (m *Memory) DeleteSession(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	delete(m.participants, id)
	return nil
}

func (m *Memory) AddParticipant(_ context.Context, sessionID, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	attendees, ok := m.participants[sessionID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := m.users[userID]; !ok {
		return ErrNotFound
	}
	if _, ok := attendees[userID]; ok {
		return ErrDuplicate
	}
	attendees[userID] = struct{}{}
	return nil
}

func (m *Memory) RemoveParticipant(_ context.Context, sessionID, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	attendees, ok := m.participants[sessionID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := attendees[userID]; !ok {
		return ErrNotFound
	}
	delete(attendees, userID)
	return nil
}

// withAttendees is called with m.mu held.
func (m *Memory) withAttendees(session model.Session) model.Session {
	attendees := m.participants[session.ID]
	users := make([]int64, 0, len(attendees))
	for id := range attendees {
		users = append(users, id)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	session.Users = users
	return session
}
