// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package visitor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"korrecte.dev/korrecte/pkg/core"
	"korrecte.dev/korrecte/pkg/core/k8sobjects"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

type visit struct {
	Container string
	PodLabels map[string]string
	Owner     string
}

func record(visits *[]visit) PodSpecVisitor {
	return PodSpecVisitorFunc(func(spec *corev1.PodSpec, podMeta, owner *metav1.ObjectMeta) {
		v := visit{PodLabels: podMeta.Labels, Owner: owner.Name}
		if len(spec.Containers) > 0 {
			v.Container = spec.Containers[0].Name
		}
		*visits = append(*visits, v)
	})
}

func TestVisit(t *testing.T) {
	labels := map[string]string{"app": "web"}
	template := k8sobjects.PodTemplate(labels, corev1.Container{Name: "nginx"})

	testCases := []struct {
		name string
		obj  client.Object
		want []visit
	}{
		{
			name: "pod uses its own metadata",
			obj:  k8sobjects.PodObject([]corev1.Container{{Name: "nginx"}}, core.Name("pod"), core.Labels(labels)),
			want: []visit{{Container: "nginx", PodLabels: labels, Owner: "pod"}},
		},
		{
			name: "deployment",
			obj:  k8sobjects.DeploymentObject(template, core.Name("deploy")),
			want: []visit{{Container: "nginx", PodLabels: labels, Owner: "deploy"}},
		},
		{
			name: "daemonset",
			obj:  k8sobjects.DaemonSetObject(template, core.Name("ds")),
			want: []visit{{Container: "nginx", PodLabels: labels, Owner: "ds"}},
		},
		{
			name: "replicaset",
			obj:  k8sobjects.ReplicaSetObject(template, core.Name("rs")),
			want: []visit{{Container: "nginx", PodLabels: labels, Owner: "rs"}},
		},
		{
			name: "statefulset",
			obj:  k8sobjects.StatefulSetObject(template, core.Name("sts")),
			want: []visit{{Container: "nginx", PodLabels: labels, Owner: "sts"}},
		},
		{
			name: "empty template is skipped",
			obj:  k8sobjects.DeploymentObject(corev1.PodTemplateSpec{}, core.Name("deploy")),
		},
		{
			name: "template without pod spec is skipped",
			obj:  k8sobjects.DeploymentObject(k8sobjects.PodTemplate(labels), core.Name("deploy")),
		},
		{
			name: "other kinds are ignored",
			obj:  k8sobjects.ServiceObject(core.Name("svc")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []visit
			Visit(tc.obj, record(&got))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestVisitAll(t *testing.T) {
	objs := []client.Object{
		k8sobjects.ServiceObject(core.Name("svc")),
		k8sobjects.DeploymentObject(k8sobjects.PodTemplate(nil, corev1.Container{Name: "a"}), core.Name("first")),
		k8sobjects.NodeObject(),
		k8sobjects.PodObject([]corev1.Container{{Name: "b"}}, core.Name("second")),
	}

	var got []visit
	VisitAll(objs, record(&got))
	want := []visit{
		{Container: "a", Owner: "first"},
		{Container: "b", Owner: "second"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestFirstMatch(t *testing.T) {
	objs := []client.Object{
		k8sobjects.DeploymentObject(k8sobjects.PodTemplate(map[string]string{"app": "api"}, corev1.Container{Name: "api"})),
		&appsv1.StatefulSet{},
		k8sobjects.DeploymentObject(k8sobjects.PodTemplate(map[string]string{"app": "web"}), core.Name("no-spec")),
		k8sobjects.DeploymentObject(k8sobjects.PodTemplate(map[string]string{"app": "web"}, corev1.Container{Name: "web-1"})),
		k8sobjects.DeploymentObject(k8sobjects.PodTemplate(map[string]string{"app": "web"}, corev1.Container{Name: "web-2"})),
	}
	isWeb := func(_ *corev1.PodSpec, podMeta *metav1.ObjectMeta) bool {
		return podMeta.Labels["app"] == "web"
	}

	spec, _, ok := FirstMatch(objs, isWeb)
	if !ok {
		t.Fatal("got no match, want web-1")
	}
	if spec.Containers[0].Name != "web-1" {
		t.Errorf("got %q, want web-1", spec.Containers[0].Name)
	}

	_, _, ok = FirstMatch(objs[:3], isWeb)
	if ok {
		t.Error("got a match, want none")
	}
}
