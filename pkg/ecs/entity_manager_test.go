package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testStockComponent struct {
	Item string
	Uses int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if !em.Exists(id1) || em.Exists(InvalidEntity) {
		t.Error("Exists should report created entities only")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: 48, Y: 0}
	em.AddComponent(id, pos)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 48 || retrieved.Y != 0 {
		t.Errorf("Component data mismatch, expected (48, 0), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	// 未创建的实体不应被隐式创建
	em.AddComponent(EntityID(42), &testPositionComponent{})
	if em.Exists(42) {
		t.Error("AddComponent must not create entities")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testPositionComponent{})

	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities after cleanup, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testStockComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testStockComponent{})

	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testStockComponent{}),
	)

	if len(entities) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(entities))
	}

	if len(entities) > 0 && entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

// TestGetEntitiesWithIsOrdered 查询结果必须按生成顺序返回
func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		want = append(want, id)
	}

	// 多次查询，map 遍历顺序随机，但结果必须稳定
	for round := 0; round < 5; round++ {
		got := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
		if len(got) != len(want) {
			t.Fatalf("Expected %d entities, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d: index %d expected %d, got %d", round, i, want[i], got[i])
			}
		}
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	em.RemoveMarkedEntities()

	if em.HasComponent(id1, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id3 should be removed")
	}
}

// TestGenericAPI 验证泛型 API 与反射 API 使用同一份存储
func TestGenericAPI(t *testing.T) {
	em := NewEntityManager()
	entity := em.CreateEntity()

	t.Run("AddComponent", func(t *testing.T) {
		AddComponent(em, entity, &testStockComponent{Item: "hoe", Uses: 3})
		if !HasComponent[*testStockComponent](em, entity) {
			t.Fatal("AddComponent 失败：组件未添加")
		}
		// 反射 API 也能看到
		if !em.HasComponent(entity, reflect.TypeOf(&testStockComponent{})) {
			t.Fatal("generic and reflect APIs disagree")
		}
	})

	t.Run("GetComponent", func(t *testing.T) {
		comp, ok := GetComponent[*testStockComponent](em, entity)
		if !ok {
			t.Fatal("GetComponent 失败：组件不存在")
		}
		if comp.Item != "hoe" || comp.Uses != 3 {
			t.Fatalf("GetComponent 失败：组件值不正确 (%s, %d)", comp.Item, comp.Uses)
		}
	})

	t.Run("GetEntitiesWith", func(t *testing.T) {
		em.AddComponent(entity, &testPositionComponent{})
		if got := GetEntitiesWith2[*testStockComponent, *testPositionComponent](em); len(got) != 1 {
			t.Fatalf("GetEntitiesWith2: expected 1 entity, got %d", len(got))
		}
		if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 1 || got[0] != entity {
			t.Fatalf("GetEntitiesWith1: unexpected result %v", got)
		}
	})

	t.Run("RemoveComponent", func(t *testing.T) {
		RemoveComponent[*testStockComponent](em, entity)
		if HasComponent[*testStockComponent](em, entity) {
			t.Fatal("RemoveComponent 失败：组件仍存在")
		}
	})

	t.Run("First", func(t *testing.T) {
		em2 := NewEntityManager()
		if _, _, ok := First[*testPositionComponent](em2); ok {
			t.Fatal("First on empty manager should report not found")
		}
		a := em2.CreateEntity()
		b := em2.CreateEntity()
		AddComponent(em2, b, &testPositionComponent{X: 2})
		AddComponent(em2, a, &testPositionComponent{X: 1})
		id, pos, ok := First[*testPositionComponent](em2)
		if !ok || id != a || pos.X != 1 {
			t.Fatalf("First should return lowest ID, got %d (%v)", id, pos)
		}
	})
}
